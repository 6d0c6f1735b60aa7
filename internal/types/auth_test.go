package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request RegisterRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid request",
			request: RegisterRequest{
				Name:     "Jane Doe",
				Email:    "jane@example.com",
				Password: "password123",
			},
			wantErr: false,
		},
		{
			name: "missing name",
			request: RegisterRequest{
				Email:    "jane@example.com",
				Password: "password123",
			},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "invalid email",
			request: RegisterRequest{
				Name:     "Jane Doe",
				Email:    "not-an-email",
				Password: "password123",
			},
			wantErr: true,
			errMsg:  "email",
		},
		{
			name: "password too short",
			request: RegisterRequest{
				Name:     "Jane Doe",
				Email:    "jane@example.com",
				Password: "short",
			},
			wantErr: true,
			errMsg:  "min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validation(t *testing.T) {
	valid := LoginRequest{Email: "jane@example.com", Password: "password123"}
	assert.NoError(t, valid.Validate())

	noEmail := LoginRequest{Password: "password123"}
	assert.Error(t, noEmail.Validate())

	noPassword := LoginRequest{Email: "jane@example.com"}
	assert.Error(t, noPassword.Validate())
}

func TestLoginResponse_JSONShape(t *testing.T) {
	response := LoginResponse{
		User: &User{
			ID:        uuid.New(),
			Name:      "Jane Doe",
			Email:     "jane@example.com",
			CreatedAt: time.Now().UTC(),
		},
		Token: "signed-token",
	}

	data, err := json.Marshal(response)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"token":"signed-token"`)
	assert.Contains(t, string(data), `"email":"jane@example.com"`)
}
