package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workpulse/ems-backend/internal/domain/auth"
	"github.com/workpulse/ems-backend/internal/handler/http/response"
	"github.com/workpulse/ems-backend/internal/pkg/jwt"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// CurrentUser extracts the authenticated identity from the verified token.
// It must only be called below AuthRequired.
func CurrentUser(r *http.Request) (auth.UserClaims, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.UserClaims{}, auth.ErrInvalidToken
	}

	user := jwt.ClaimsToUser(claims)
	if user.ID == "" {
		return auth.UserClaims{}, auth.ErrInvalidToken
	}
	return user, nil
}
