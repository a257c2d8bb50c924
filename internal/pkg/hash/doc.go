// Package hash provides helpers for hashing and verifying secrets.
//
// Typical usage is keyed hashing of opaque tokens before they are stored:
// store only the hash and look records up by recomputing it. Implementations
// live in this package behind a small interface.
package hash
