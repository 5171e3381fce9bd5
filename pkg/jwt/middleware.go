package jwt

import (
	"log/slog"
	"net/http"
	"strings"
)

// TokenExtractorFunc defines a function that extracts a token from an HTTP request.
type TokenExtractorFunc func(r *http.Request) (string, error)

// MiddlewareConfig configures Authenticate.
type MiddlewareConfig struct {
	Service   *Service
	Logger    *slog.Logger
	Extractor TokenExtractorFunc // defaults to BearerTokenExtractor
}

// Authenticate verifies the bearer token, if any, and attaches the identity
// to the request context. Requests are never rejected here.
func Authenticate(service *Service, log *slog.Logger) func(next http.Handler) http.Handler {
	return AuthenticateWithConfig(MiddlewareConfig{
		Service:   service,
		Logger:    log,
		Extractor: BearerTokenExtractor,
	})
}

// AuthenticateWithConfig is Authenticate with a custom configuration.
func AuthenticateWithConfig(config MiddlewareConfig) func(next http.Handler) http.Handler {
	if config.Extractor == nil {
		config.Extractor = BearerTokenExtractor
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := config.Extractor(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			id, err := config.Service.Verify(token)
			if err != nil {
				config.Logger.DebugContext(r.Context(), "ignoring invalid token",
					slog.String("path", r.URL.Path),
					slog.Any("error", err),
				)
				next.ServeHTTP(w, r)
				return
			}

			ctx := SetToken(r.Context(), token)
			ctx = WithIdentity(ctx, id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerTokenExtractor extracts the token from an "Authorization: Bearer <token>"
// header. The scheme name is matched case-insensitively.
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	if authHeader == "" {
		return "", ErrInvalidToken
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidToken
	}

	return token, nil
}

// HeaderTokenExtractor creates a token extractor for custom headers.
func HeaderTokenExtractor(headerName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := strings.TrimSpace(r.Header.Get(headerName))
		if token == "" {
			return "", ErrInvalidToken
		}
		return token, nil
	}
}
