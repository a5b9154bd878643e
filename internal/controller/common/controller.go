// Package common provides the help center and activity feed handlers shared by every console.
package common

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aps-backend/internal/activity"
)

// CommonController serves pages that need no role
type CommonController struct {
	Activity *activity.Recorder
}

// NewCommonController creates a new instance of CommonController
func NewCommonController(recorder *activity.Recorder) *CommonController {
	return &CommonController{
		Activity: recorder,
	}
}

// HelpResponse is the help center content
type HelpResponse struct {
	FAQs    []FAQ           `json:"faqs"`
	Contact []ContactOption `json:"contact"`
}

// SearchFAQ filters the help center questions
// @Summary Help center
// @Description q matches a case-insensitive substring of question, answer or category
// @Tags Common
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} HelpResponse
// @Router /help [get]
func (cc *CommonController) SearchFAQ(c *gin.Context) {
	term := strings.ToLower(strings.TrimSpace(c.Query("q")))

	matched := make([]FAQ, 0, len(faqs))
	for _, f := range faqs {
		if term == "" ||
			strings.Contains(strings.ToLower(f.Question), term) ||
			strings.Contains(strings.ToLower(f.Answer), term) ||
			strings.Contains(strings.ToLower(f.Category), term) {
			matched = append(matched, f)
		}
	}

	c.JSON(http.StatusOK, HelpResponse{FAQs: matched, Contact: contactOptions})
}

// GetActivityLog returns the activity feed
// @Summary Activity feed
// @Tags Common
// @Produce json
// @Param q query string false "Substring of user, action or target"
// @Param action query string false "all, upload, view, edit, download, delete or auth"
// @Success 200 {array} activity.Entry
// @Router /activity-log [get]
func (cc *CommonController) GetActivityLog(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Activity.Entries(c.Query("q"), c.Query("action")))
}
