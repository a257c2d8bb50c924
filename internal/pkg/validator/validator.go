package validator

// Validator validates request and domain structs.
type Validator interface {
	// Validate checks the struct and returns an error describing any violations.
	Validate(data any) error
}
