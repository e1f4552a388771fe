// Package form collects, coerces and validates user input submitted as named
// fields, typically the decoded body of an HTML form POST.
//
// A Form is configured once with a set of field expectations and can then be
// used to validate any number of inputs. Expectations are registered through a
// fluent API where every call returns the Form itself:
//
//	f := form.New(form.WithLogger(log)).
//		RequireEmail("email").
//		ExpectInt("age", form.WithDefault(18)).
//		RequireOneOf("plan", []string{"free", "pro"}).
//		ExpectStringArray("tags")
//
//	if !f.Validate(in) {
//		// f.Errors() lists the invalid identifiers in registration order
//	}
//	email := f.String("email")
//
// # Coercion
//
// Each field has a Kind that decides how its raw string value is converted:
// booleans, integers, floats, e-mail addresses, IP literals, absolute URLs,
// regular expression matches, dates in a caller supplied format, non-empty
// strings, raw values, or a caller supplied transform. A value that cannot be
// coerced becomes nil. Boolean false is a legitimate coerced value and is
// never mistaken for a failure.
//
// # Required fields, defaults and validators
//
// A required field whose coerced value is nil is reported under its own name.
// Optional fields may carry a default that Get returns when no value was
// coerced; the default never shows up in Values. Custom validators run after
// coercion and receive the coerced value (which may be nil); a rejected value
// is reported under the field name and reset to nil.
//
// # Array fields
//
// Fields registered in array mode accept indexed sequences (for example the
// tags[] or tags[3] keys of a form post). Each element is coerced on its own
// and the result is an Indexed map that keeps the original indices of the
// surviving elements. Invalid elements of a required array field are reported
// as name[index]; invalid elements of an optional array field are dropped
// silently. A required array field submitted as an empty sequence is reported
// under its plain name.
//
// # Cross-field checks
//
// WithHook registers a function that runs after all fields were processed and
// may call AddError to report additional identifiers.
//
// # Concurrency
//
// A Form keeps the results of its latest Validate call and is not safe for
// concurrent validation. Build one Form per request, or guard it externally.
//
// # Query strings
//
// Params, URLEncode, QSMerge and QSRemove build URL query strings that keep
// the order of their keys, which is handy for pagination and filter links.
package form
