// Package validator provides small, composable validation rules.
//
// Every rule constructor returns a Rule: a Check function paired with the
// ValidationError reported when the check fails. Apply evaluates a set of
// rules and aggregates the failures into ValidationErrors, which implements
// error and unwraps to ErrValidationFailed.
//
//	err := validator.Apply(
//		validator.Required("name", name),
//		validator.ValidEmail("email", email),
//		validator.InListString("plan", plan, []string{"free", "pro"}),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// verrs.Fields(), verrs.Get("email")
//	}
//
// The same rules back the field kinds of package form. IP literal checks use
// github.com/go-playground/validator/v10 tags.
//
// Rules hold no state, so they are safe for concurrent use.
package validator
