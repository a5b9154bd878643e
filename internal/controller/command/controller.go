// Package command exposes voice command and keyboard shortcut resolution over HTTP.
package command

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aps-backend/internal/command"
	"aps-backend/internal/utilities"
)

// CommandController resolves client input to navigation targets
type CommandController struct{}

// NewCommandController creates a new instance of CommandController
func NewCommandController() *CommandController {
	return &CommandController{}
}

type voiceRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

// Voice resolves a spoken command
// @Summary Resolve a voice command
// @Tags Command
// @Accept json
// @Produce json
// @Param command body voiceRequest true "Recognized speech"
// @Success 200 {object} command.Result
// @Success 204 "No command matched"
// @Failure 400 {object} utilities.ErrorResponse "Transcript missing"
// @Router /commands/voice [post]
func (cc *CommandController) Voice(c *gin.Context) {
	var req voiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail("Transcript must be provided"))
		return
	}

	result, ok := command.ResolveVoice(req.Transcript)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Shortcut resolves a key press
// @Summary Resolve a keyboard shortcut
// @Tags Command
// @Accept json
// @Produce json
// @Param shortcut body command.Shortcut true "Key, ctrl modifier and current path"
// @Success 200 {object} command.Result
// @Success 204 "No shortcut matched"
// @Failure 400 {object} utilities.ErrorResponse "Key missing"
// @Router /commands/shortcut [post]
func (cc *CommandController) Shortcut(c *gin.Context) {
	var req command.Shortcut
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail("Key must be provided"))
		return
	}

	result, ok := command.ResolveShortcut(req)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListShortcuts returns the shortcut help overlay
// @Summary List keyboard shortcuts
// @Tags Command
// @Produce json
// @Success 200 {array} command.ShortcutHelp
// @Router /commands/shortcuts [get]
func (cc *CommandController) ListShortcuts(c *gin.Context) {
	c.JSON(http.StatusOK, command.Shortcuts)
}
