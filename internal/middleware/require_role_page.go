package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aps-backend/internal/state"
)

// UnauthorizedPath is where signed in users of the wrong role are sent
const UnauthorizedPath = "/unauthorized"

// LoginPath returns the login page of role
func LoginPath(role string) string {
	return "/" + role + "/login"
}

// RequireRolePage guards page routes of one console. Anonymous visitors are
// redirected to the console login page, other roles to UnauthorizedPath.
func RequireRolePage(auth *state.AuthStore, role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := auth.User()
		if !ok || !auth.IsAuthenticated() {
			ctx.Redirect(http.StatusFound, LoginPath(role))
			ctx.Abort()
			return
		}
		if user.Role != role {
			ctx.Redirect(http.StatusFound, UnauthorizedPath)
			ctx.Abort()
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}
