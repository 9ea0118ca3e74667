package v1handler

import (
	"context"
	"crypto/rsa"
	"net/http"
	"strings"

	"breachwatch/internal/config"
	"breachwatch/pkg/domain"
	"breachwatch/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SecHandlerOptions configure API authentication.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key tokens are verified with.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler authenticates requests with RS256 bearer tokens whose subject is
// the caller's user ID.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler parses the configured public key and returns a SecHandler.
func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not parse JWT public key")
	}

	return &SecHandler{publicKey: key}, nil
}

type ctxKey string

const userIDKey ctxKey = "userID"

// GetUserIDFromContext returns the authenticated user ID stored by the
// middleware. The zero UserID is returned for unauthenticated contexts.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(userIDKey).(domain.UserID)

	return id
}

// Middleware validates the Authorization bearer token and injects the token
// subject into the request context as the user ID.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		raw := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(raw, "Bearer ")
		if !ok || token == "" {
			writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		claims := jwt.RegisteredClaims{}
		if _, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
			return s.publicKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()})); err != nil {
			writeError(ctx, w, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token"))

			return
		}

		subject, err := uuid.Parse(claims.Subject)
		if err != nil {
			writeError(ctx, w, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject"))

			return
		}

		ctx = context.WithValue(ctx, userIDKey, domain.UserID(subject))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
