package datasource

import (
	"context"
	"fmt"

	"aps-backend/internal/model"
)

// DemoCredentials are the only accepted login pairs, one per role
var DemoCredentials = map[string]model.Credentials{
	model.RoleHR:    {Email: "hr@akshyapatra.com", Password: "hr123456"},
	model.RoleAdmin: {Email: "admin@akshyapatra.com", Password: "admin123456"},
}

// Login accepts only the demo pair of role. The token is an opaque, unsigned string.
func (m *MockAPI) Login(ctx context.Context, credentials model.Credentials, role string) (LoginResult, error) {
	if err := wait(ctx, m.delays.Login); err != nil {
		return LoginResult{}, err
	}

	valid, ok := DemoCredentials[role]
	if !ok || valid.Email != credentials.Email || valid.Password != credentials.Password {
		return LoginResult{Result: Result{Success: false, Error: "Invalid credentials"}}, nil
	}

	user := &model.User{
		ID:          fmt.Sprintf("%s_1", role),
		Name:        "HR Manager",
		Email:       credentials.Email,
		Role:        role,
		Permissions: []string{"read", "write"},
	}
	if role == model.RoleAdmin {
		user.Name = "System Administrator"
		user.Permissions = []string{"all"}
	}

	return LoginResult{
		Result: Result{Success: true},
		User:   user,
		Token:  fmt.Sprintf("mock_token_%s_%d", role, m.now().UnixMilli()),
	}, nil
}
