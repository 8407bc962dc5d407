package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"houseprice/internal/core"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type Authenticator struct {
	logs       *zap.SugaredLogger
	identifier Identifier
}

func NewAuthenticator(logger *zap.SugaredLogger, identifier Identifier) *Authenticator {
	return &Authenticator{
		logs:       logger,
		identifier: identifier,
	}
}

// Require rejects requests without a valid bearer token and stores the caller's
// username in the request context for next.
func (a *Authenticator) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := RequestID(r.Context())

		token, ok := bearerToken(r)
		if !ok {
			a.reject(w, http.StatusUnauthorized, "Authorization bearer token is required")
			a.logs.Errorw("missing bearer token",
				"path", r.URL.Path,
				"request_id", requestId)
			return
		}

		username, err := a.identifier.Identify(r.Context(), token)
		if err != nil {
			code, msg := http.StatusInternalServerError, "unexpected error occurred"
			if errors.Is(err, core.ErrUnauthenticated) {
				code, msg = http.StatusUnauthorized, core.ErrUnauthenticated.Error()
			}
			a.reject(w, code, msg)
			a.logs.Errorw("bearer token rejected",
				"error", err,
				"path", r.URL.Path,
				"request_id", requestId)
			return
		}

		ctx := context.WithValue(r.Context(), UsernameKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Authenticator) reject(w http.ResponseWriter, code int, reason string) {
	if code == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication failed",
		"error":   reason,
	})
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
