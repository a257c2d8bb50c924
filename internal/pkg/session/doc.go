// Package session manages server-side sessions for authenticated users.
//
// A session is an opaque, unpredictable token bound to an identity. The
// binding lives in Redis under an HMAC of the token, so a leaked store dump
// does not expose usable tokens. Both the OTP login flow and federated OAuth
// login establish sessions through the same Manager, and the router's
// authentication middleware resolves tokens through Current, so every
// entry point shares a single canonical resolution path.
package session
