// Package validation provides input validation utilities for pkgbridge
// request surfaces.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// recommended for configuration types; the fluent Validator fits argument
// checks on adapter operations.
//
// # Struct Tag Validation
//
//	type SourceRequest struct {
//	    Name     string `validate:"required,min=1"`
//	    Location string `validate:"required,url"`
//	}
//	err := validation.ValidateStruct(req)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", name)
//	v.RequiredURI("location", location)
//	err := v.Validate()
package validation
