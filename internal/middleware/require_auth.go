// Package middleware contain utilities middleware code
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aps-backend/internal/state"
	"aps-backend/internal/utilities"
)

// RequireAuth lets the request through only while a console user is signed in.
// A bearer token, when sent, must be the current session token. Nothing else
// about the token is checked.
func RequireAuth(auth *state.AuthStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := auth.User()
		if !ok || !auth.IsAuthenticated() {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.Fail("Not logged in"))
			return
		}

		if ctx.GetHeader("Authorization") != "" {
			token, err := utilities.ExtractBearerToken(ctx)
			if err != nil {
				ctx.AbortWithStatusJSON(http.StatusBadRequest, utilities.Fail(err.Error()))
				return
			}
			if token != auth.Token() {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.Fail("Invalid session token"))
				return
			}
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}
