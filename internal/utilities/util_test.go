package utilities

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aps-backend/internal/model"
)

func TestMergeNonEmpty(t *testing.T) {
	emp := model.Employee{ID: "emp_1", Name: "Old", Email: "old@aps.com", Department: "HR", Status: "active"}
	input := model.EmployeeInput{Name: "New", Department: ""}

	MergeNonEmpty(&emp, &input)

	assert.Equal(t, "New", emp.Name)
	assert.Equal(t, "old@aps.com", emp.Email)
	assert.Equal(t, "HR", emp.Department)
	assert.Equal(t, "emp_1", emp.ID)
}

func TestExtractUser(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := ExtractUser(c)
	assert.EqualError(t, err, "User information not provided")

	c.Set("user", "not a user")
	_, err = ExtractUser(c)
	assert.EqualError(t, err, "Failed to assert type")

	c.Set("user", model.User{ID: "hr_1"})
	u, err := ExtractUser(c)
	require.NoError(t, err)
	assert.Equal(t, "hr_1", u.ID)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer mock_token_hr_1", "mock_token_hr_1", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", tc.header)

		got, err := ExtractBearerToken(c)
		if tc.ok {
			require.NoError(t, err, tc.header)
			assert.Equal(t, tc.want, got)
		} else {
			assert.Error(t, err, tc.header)
		}
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(model.Roles, model.RoleHR))
	assert.False(t, Contains(model.Roles, "candidate"))
}

func TestSimulateAPICall(t *testing.T) {
	handler := func(c *gin.Context) {
		var body map[string]string
		_ = c.ShouldBindJSON(&body)
		c.JSON(http.StatusOK, Ok(body["say"]))
	}

	rec, resp, err := SimulateAPICall(handler, "/echo", http.MethodPost, map[string]string{"say": "hi"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hi", resp["message"])
	assert.Equal(t, true, resp["success"])
}
