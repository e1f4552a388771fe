package form

// with appends extra without touching the caller's backing array.
func with(opts []Option, extra ...Option) []Option {
	return append(opts[:len(opts):len(opts)], extra...)
}

func required(opts []Option) []Option {
	return with(opts, WithRequired())
}

func array(opts []Option) []Option {
	return with(opts, WithArray())
}

// Booleans default to false unless another default is given.
func boolOpts(opts []Option) []Option {
	return append([]Option{WithDefault(false)}, opts...)
}

func trueOpts(opts []Option) []Option {
	return with(boolOpts(opts), WithValidator(isTrue))
}

func isTrue(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case Indexed:
		if len(b) == 0 {
			return false
		}
		for _, el := range b {
			if el != true {
				return false
			}
		}
		return true
	}
	return false
}

func (f *Form) ExpectBool(name string, opts ...Option) *Form {
	return f.Expect(name, KindBool, boolOpts(opts)...)
}

func (f *Form) RequireBool(name string, opts ...Option) *Form {
	return f.Expect(name, KindBool, required(boolOpts(opts))...)
}

func (f *Form) ExpectBoolArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindBool, array(boolOpts(opts))...)
}

func (f *Form) RequireBoolArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindBool, required(array(boolOpts(opts)))...)
}

// ExpectTrue registers a boolean field that is only valid when true, such as
// a terms-of-service checkbox.
func (f *Form) ExpectTrue(name string, opts ...Option) *Form {
	return f.Expect(name, KindBool, trueOpts(opts)...)
}

func (f *Form) RequireTrue(name string, opts ...Option) *Form {
	return f.Expect(name, KindBool, required(trueOpts(opts))...)
}

func (f *Form) ExpectTrueArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindBool, array(trueOpts(opts))...)
}

func (f *Form) RequireTrueArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindBool, required(array(trueOpts(opts)))...)
}

func (f *Form) ExpectEmail(name string, opts ...Option) *Form {
	return f.Expect(name, KindEmail, opts...)
}

func (f *Form) RequireEmail(name string, opts ...Option) *Form {
	return f.Expect(name, KindEmail, required(opts)...)
}

func (f *Form) ExpectEmailArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindEmail, array(opts)...)
}

func (f *Form) RequireEmailArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindEmail, required(array(opts))...)
}

func (f *Form) ExpectFloat(name string, opts ...Option) *Form {
	return f.Expect(name, KindFloat, opts...)
}

func (f *Form) RequireFloat(name string, opts ...Option) *Form {
	return f.Expect(name, KindFloat, required(opts)...)
}

func (f *Form) ExpectFloatArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindFloat, array(opts)...)
}

func (f *Form) RequireFloatArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindFloat, required(array(opts))...)
}

func (f *Form) ExpectInt(name string, opts ...Option) *Form {
	return f.Expect(name, KindInt, opts...)
}

func (f *Form) RequireInt(name string, opts ...Option) *Form {
	return f.Expect(name, KindInt, required(opts)...)
}

func (f *Form) ExpectIntArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindInt, array(opts)...)
}

func (f *Form) RequireIntArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindInt, required(array(opts))...)
}

func (f *Form) ExpectIP(name string, opts ...Option) *Form {
	return f.Expect(name, KindIP, opts...)
}

func (f *Form) RequireIP(name string, opts ...Option) *Form {
	return f.Expect(name, KindIP, required(opts)...)
}

func (f *Form) ExpectIPArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindIP, array(opts)...)
}

func (f *Form) RequireIPArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindIP, required(array(opts))...)
}

// ExpectRegex registers a field whose value must match pattern.
// It panics if the pattern does not compile.
func (f *Form) ExpectRegex(name, pattern string, opts ...Option) *Form {
	return f.Expect(name, KindRegex, with(opts, WithPattern(pattern))...)
}

func (f *Form) RequireRegex(name, pattern string, opts ...Option) *Form {
	return f.Expect(name, KindRegex, required(with(opts, WithPattern(pattern)))...)
}

func (f *Form) ExpectRegexArray(name, pattern string, opts ...Option) *Form {
	return f.Expect(name, KindRegex, array(with(opts, WithPattern(pattern)))...)
}

func (f *Form) RequireRegexArray(name, pattern string, opts ...Option) *Form {
	return f.Expect(name, KindRegex, required(array(with(opts, WithPattern(pattern))))...)
}

func (f *Form) ExpectURL(name string, opts ...Option) *Form {
	return f.Expect(name, KindURL, opts...)
}

func (f *Form) RequireURL(name string, opts ...Option) *Form {
	return f.Expect(name, KindURL, required(opts)...)
}

func (f *Form) ExpectURLArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindURL, array(opts)...)
}

func (f *Form) RequireURLArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindURL, required(array(opts))...)
}

// ExpectString registers a free-form text field. Any value of at least one
// character is accepted.
func (f *Form) ExpectString(name string, opts ...Option) *Form {
	return f.Expect(name, KindString, opts...)
}

func (f *Form) RequireString(name string, opts ...Option) *Form {
	return f.Expect(name, KindString, required(opts)...)
}

func (f *Form) ExpectStringArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindString, array(opts)...)
}

func (f *Form) RequireStringArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindString, required(array(opts))...)
}

// ExpectOneOf registers a field whose value must be one of choices. An empty
// or missing value is valid unless the field is required.
func (f *Form) ExpectOneOf(name string, choices []string, opts ...Option) *Form {
	return f.Expect(name, KindRaw, with(opts, WithChoices(choices...))...)
}

func (f *Form) RequireOneOf(name string, choices []string, opts ...Option) *Form {
	return f.Expect(name, KindRaw, required(with(opts, WithChoices(choices...)))...)
}

func (f *Form) ExpectOneOfArray(name string, choices []string, opts ...Option) *Form {
	return f.Expect(name, KindRaw, array(with(opts, WithChoices(choices...)))...)
}

func (f *Form) RequireOneOfArray(name string, choices []string, opts ...Option) *Form {
	return f.Expect(name, KindRaw, required(array(with(opts, WithChoices(choices...))))...)
}

// ExpectRaw registers a field whose value is passed through unchecked.
func (f *Form) ExpectRaw(name string, opts ...Option) *Form {
	return f.Expect(name, KindRaw, opts...)
}

func (f *Form) RequireRaw(name string, opts ...Option) *Form {
	return f.Expect(name, KindRaw, required(opts)...)
}

func (f *Form) ExpectRawArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindRaw, array(opts)...)
}

func (f *Form) RequireRawArray(name string, opts ...Option) *Form {
	return f.Expect(name, KindRaw, required(array(opts))...)
}

// ExpectDate registers a date field in the given date() style format,
// for example "Y-m-d" or "H:i". The coerced value is a time.Time.
// It panics if the format uses unsupported tokens.
func (f *Form) ExpectDate(name, format string, opts ...Option) *Form {
	return f.Expect(name, KindDate, with(opts, WithFormat(format))...)
}

func (f *Form) RequireDate(name, format string, opts ...Option) *Form {
	return f.Expect(name, KindDate, required(with(opts, WithFormat(format)))...)
}

func (f *Form) ExpectDateArray(name, format string, opts ...Option) *Form {
	return f.Expect(name, KindDate, array(with(opts, WithFormat(format)))...)
}

func (f *Form) RequireDateArray(name, format string, opts ...Option) *Form {
	return f.Expect(name, KindDate, required(array(with(opts, WithFormat(format))))...)
}

// ExpectFunc registers a field coerced by fn. The transform reports false
// (or returns nil) for invalid input.
func (f *Form) ExpectFunc(name string, fn func(raw string) (any, bool), opts ...Option) *Form {
	return f.Expect(name, KindFunc, with(opts, WithTransform(fn))...)
}

func (f *Form) RequireFunc(name string, fn func(raw string) (any, bool), opts ...Option) *Form {
	return f.Expect(name, KindFunc, required(with(opts, WithTransform(fn)))...)
}

func (f *Form) ExpectFuncArray(name string, fn func(raw string) (any, bool), opts ...Option) *Form {
	return f.Expect(name, KindFunc, array(with(opts, WithTransform(fn)))...)
}

func (f *Form) RequireFuncArray(name string, fn func(raw string) (any, bool), opts ...Option) *Form {
	return f.Expect(name, KindFunc, required(array(with(opts, WithTransform(fn))))...)
}
