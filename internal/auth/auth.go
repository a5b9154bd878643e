// Package auth serves the console login, logout and profile endpoints
package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"aps-backend/internal/activity"
	"aps-backend/internal/errtrack"
	"aps-backend/internal/model"
	"aps-backend/internal/state"
	"aps-backend/internal/utilities"
)

// Handler holds the auth store and the sinks that observe sign in and sign out
type Handler struct {
	Auth     *state.AuthStore
	Activity *activity.Recorder
	Tracker  errtrack.Tracker
	Attempts *AttemptLog
}

// NewHandler creates a new instance of Handler
func NewHandler(auth *state.AuthStore, recorder *activity.Recorder, tracker errtrack.Tracker, attempts *AttemptLog) *Handler {
	if tracker == nil {
		tracker = errtrack.Log{}
	}
	return &Handler{
		Auth:     auth,
		Activity: recorder,
		Tracker:  tracker,
		Attempts: attempts,
	}
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Success bool       `json:"success"`
	User    model.User `json:"user"`
	Token   string     `json:"token"`
}

// MeResponse describes the current session
type MeResponse struct {
	Success         bool       `json:"success"`
	IsAuthenticated bool       `json:"isAuthenticated"`
	User            model.User `json:"user"`
}

type profilePatch struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

// LoginHandler signs in with the demo credentials of the role in the path
// @Summary Sign in to the HR or admin console
// @Description Only the demo account of each role is accepted
// @Tags Auth
// @Accept json
// @Produce json
// @Param role path string true "hr or admin"
// @Param credentials body model.Credentials true "Email and password"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} utilities.ErrorResponse "Unknown role or malformed body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid credentials"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /auth/login/{role} [post]
func (h *Handler) LoginHandler(c *gin.Context) {
	role := c.Param("role")
	if !utilities.Contains(model.Roles, role) {
		c.JSON(http.StatusBadRequest, utilities.Fail("Role must be 'hr' or 'admin'"))
		return
	}

	var creds model.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail("Email and password must be provided"))
		return
	}

	session, err := h.Auth.Login(c.Request.Context(), creds, role)
	if err != nil {
		var actionErr *state.ActionError
		if errors.As(err, &actionErr) {
			h.Attempts.Log("warning", role, "Fail", creds.Email, actionErr.Message)
			c.JSON(http.StatusUnauthorized, utilities.Fail(actionErr.Message))
			return
		}
		h.Attempts.Log("error", role, "Fail", creds.Email, err.Error())
		h.Tracker.CaptureError(err, map[string]any{"role": role})
		c.JSON(http.StatusInternalServerError, utilities.Fail("Login failed. Please try again."))
		return
	}

	user := session.User
	h.Attempts.Log("info", role, "Success", user.Email, "")
	h.Tracker.SetUser(user)
	h.Tracker.AddBreadcrumb("signed in as "+role, "auth")
	h.record(c, user, "Signed in")

	c.JSON(http.StatusOK, LoginResponse{Success: true, User: user, Token: session.Token})
}

// LogoutHandler signs the current user out and clears the persisted session
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utilities.MessageResponse
// @Failure 401 {object} utilities.ErrorResponse "Not logged in"
// @Failure 500 {object} utilities.ErrorResponse "Session storage could not be cleared"
// @Router /auth/logout [post]
func (h *Handler) LogoutHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.Fail(err.Error()))
		return
	}

	if err := h.Auth.Logout(c.Request.Context()); err != nil {
		log.Printf("Logout: failed to clear session: %v", err)
		h.Tracker.CaptureError(err, map[string]any{"user": user.ID})
		c.JSON(http.StatusInternalServerError, utilities.Fail("Failed to logout"))
		return
	}

	h.Attempts.Log("info", user.Role, "Success", user.Email, "logout")
	h.Tracker.SetUser(model.User{})
	h.record(c, user, "Signed out")

	c.JSON(http.StatusOK, utilities.Ok("Successfully logged out"))
}

// MeHandler returns the signed in user
// @Summary Current session
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} utilities.ErrorResponse "Not logged in"
// @Router /auth/me [get]
func (h *Handler) MeHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, MeResponse{Success: true, IsAuthenticated: true, User: user})
}

// UpdateMeHandler changes the name or email of the signed in user
// @Summary Edit the current user's profile
// @Description Empty fields are left unchanged
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body profilePatch true "Fields to change"
// @Success 200 {object} MeResponse
// @Failure 400 {object} utilities.ErrorResponse "Malformed body"
// @Failure 401 {object} utilities.ErrorResponse "Not logged in"
// @Router /auth/me [patch]
func (h *Handler) UpdateMeHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.Fail(err.Error()))
		return
	}

	var patch profilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail("Name or a valid email must be provided"))
		return
	}
	utilities.MergeNonEmpty(&user, &patch)

	if err := h.Auth.UpdateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, state.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, utilities.Fail("Not logged in"))
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.Fail("Failed to save profile"))
		return
	}

	h.record(c, user, "Updated profile")
	c.JSON(http.StatusOK, MeResponse{Success: true, IsAuthenticated: true, User: user})
}

func (h *Handler) record(c *gin.Context, user model.User, action string) {
	if h.Activity == nil {
		return
	}
	h.Activity.Record(c.Request.Context(), activity.Entry{
		Type:    activity.TypeAuth,
		User:    user.Name,
		Action:  action,
		Target:  user.Role + " console",
		Details: user.Email,
		IP:      c.ClientIP(),
	})
}
