// Package uid provides ID generators used across the application.
//
// Numeric IDs (snowflake) are used for database entities, string IDs for
// correlation IDs and opaque tokens.
package uid

// NumberID generates unique int64 identifiers.
type NumberID interface {
	// Generate returns a new unique int64 ID.
	Generate() int64
}

// StringID generates unique string identifiers.
type StringID interface {
	// Generate returns a new unique string ID.
	Generate() string
}
