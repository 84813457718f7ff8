package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/config"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/golang-jwt/jwt/v5"
)

type claimsKey struct{}

var (
	errMissingToken   = errors.New("missing bearer token")
	errMalformedToken = errors.New("authorization header must be 'Bearer <token>'")
	errInvalidToken   = errors.New("invalid or expired token")
)

// Authentication verifies HS256 bearer tokens. The subject is stored on the
// context under the logger's subject key and becomes the recorded user ID.
func Authentication(cfg config.Auth, log logger.Logger) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = struct{}{}
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	}

	if cfg.Audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(cfg.Audience))
	}

	parser := jwt.NewParser(parserOpts...)
	secret := []byte(cfg.JWTSecret)
	log = log.Component("auth")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)

				return
			}

			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)

				return
			}

			claims, err := parseBearer(r, parser, secret, cfg.ValidIssuers)
			if err != nil {
				reqLog := log.WithContext(r.Context())
				reqLog.Debug().Err(err).Msg("rejected bearer token")
				w.Header().Set("WWW-Authenticate", `Bearer realm="imei-lookup"`)
				writeError(w, http.StatusUnauthorized, codeUnauthorized, err.Error())

				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func parseBearer(r *http.Request, parser *jwt.Parser, secret []byte, issuers []string) (*model.Claims, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, errMissingToken
	}

	scheme, raw, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(raw) == "" {
		return nil, errMalformedToken
	}

	claims := &model.Claims{}

	_, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil || claims.Subject == "" {
		return nil, errInvalidToken
	}

	if !issuerAllowed(claims.Issuer, issuers) {
		return nil, errInvalidToken
	}

	return claims, nil
}

func issuerAllowed(issuer string, allowed []string) bool {
	configured := 0

	for _, candidate := range allowed {
		if candidate == "" {
			continue
		}

		configured++

		if candidate == issuer {
			return true
		}
	}

	return configured == 0
}

func WithClaims(ctx context.Context, claims *model.Claims) context.Context {
	ctx = context.WithValue(ctx, claimsKey{}, claims)

	return context.WithValue(ctx, logger.ContextKeySubject, claims.Subject)
}

func GetClaims(ctx context.Context) *model.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*model.Claims)

	return claims
}

// GetSubject returns the authenticated subject or "" for anonymous calls.
func GetSubject(ctx context.Context) string {
	if claims := GetClaims(ctx); claims != nil {
		return claims.Subject
	}

	return ""
}
