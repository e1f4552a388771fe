package form

// Kind selects the coercion rule applied to a field's raw value.
type Kind uint8

const (
	// KindRaw passes the value through untouched.
	KindRaw Kind = iota
	// KindBool accepts 1/true/on/yes and 0/false/off/no/"".
	KindBool
	// KindInt accepts base-10 integers.
	KindInt
	// KindFloat accepts decimal numbers with an optional exponent.
	KindFloat
	// KindEmail accepts a bare RFC 5322 address.
	KindEmail
	// KindIP accepts IPv4 and IPv6 literals.
	KindIP
	// KindURL accepts absolute URLs with a scheme and a host.
	KindURL
	// KindRegex accepts values matched by the field's pattern.
	KindRegex
	// KindDate accepts values that round-trip through the field's format.
	KindDate
	// KindString accepts any value of at least one character.
	KindString
	// KindFunc delegates coercion to the field's transform.
	KindFunc
)

var kindNames = [...]string{
	KindRaw:    "raw",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindEmail:  "email",
	KindIP:     "ip",
	KindURL:    "url",
	KindRegex:  "regex",
	KindDate:   "date",
	KindString: "string",
	KindFunc:   "func",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) valid() bool {
	return k <= KindFunc
}
