// Package http is the inbound HTTP adapter. It exposes the order desk use
// cases as a JSON API over echo: login, order capture and editing, the
// dispatch queue, dispatching, user administration, and reporting.
//
// Every route except /health and /api/v1/auth/login sits behind the bearer
// token middleware, which verifies the signed token and attaches the acting
// user's username and role to the request. Authorization decisions stay in
// the application layer; the adapter only transports the actor's identity.
package http
