// Package validation runs struct tag validation over configuration and
// request payloads.
//
//	type SubscriptionSpec struct {
//	    ServiceModelName string `validate:"required"`
//	}
//	err := validation.ValidateStruct(spec)
//
// Failures are reported as an errors.AppError carrying a per-field
// breakdown in Details.
package validation
