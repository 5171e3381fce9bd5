// Package core holds the error taxonomy shared by every layer of the API.
//
// Packages declare their own sentinel errors and attach a classification
// with errors.Join:
//
//	return errors.Join(ErrExpiredToken, core.ErrUnauthenticated)
//
// The outer request handler then calls StatusCode to pick the HTTP status.
// Validation failures use ValidationError (400) so they can carry per-field
// messages; everything else is an HTTPError value.
package core
