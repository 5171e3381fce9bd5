// Package jwt issues and verifies the signed identity tokens used by the API.
//
// A token carries an Identity: the username, the admin flag and the time it
// was issued. Tokens are HS256-signed with a secret that is fixed when the
// Service is constructed. Signing and parsing are delegated to
// github.com/golang-jwt/jwt/v4; this package adds the claims shape, expiry
// policy, error classification and the HTTP middleware.
//
// # Usage
//
//	svc, err := jwt.New([]byte(cfg.SecretKey), jwt.WithTTL(24*time.Hour))
//	if err != nil {
//		return err
//	}
//
//	token, err := svc.Issue(jwt.Identity{Username: "u1", IsAdmin: false})
//
//	id, err := svc.Verify(token)
//	if err != nil {
//		// errors.Is(err, core.ErrUnauthenticated) is always true here
//	}
//
//	r.Use(jwt.Authenticate(svc, log))
//
// # Middleware
//
// Authenticate never rejects a request. A missing or invalid token simply
// leaves the request without an Identity in its context; access decisions
// are made by the rbac guards.
//
// # Error Handling
//
// Every Verify failure wraps one of ErrInvalidToken, ErrInvalidSignature,
// ErrUnexpectedSigningMethod, ErrExpiredToken or ErrInvalidClaims together
// with core.ErrUnauthenticated.
package jwt
