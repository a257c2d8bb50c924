// Package otp provides helpers for generating and validating the one-time
// passwords (OTP) used by the passwordless email login flow.
//
// Codes are uniform random 6-digit numerics issued with an expiry timestamp;
// this is deliberately not TOTP/HOTP, the code is a short-lived credential
// delivered out of band and checked against stored state exactly once.
package otp
