package auth

import (
	"testing"

	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{
		EmployeeID: "EMP-001",
		FirstName:  "Ada",
		LastName:   "Sari",
		Email:      "ada@dayflow.io",
		Password:   "supersecret",
		Role:       "employee",
	}
	assert.NoError(t, valid.Validate())

	// Role is optional; empty defaults downstream.
	valid.Role = ""
	assert.NoError(t, valid.Validate())
}

func TestRegisterRequest_Validate_Failures(t *testing.T) {
	cases := []struct {
		name  string
		morph func(*RegisterRequest)
		field string
	}{
		{"short employee id", func(r *RegisterRequest) { r.EmployeeID = "ab" }, "employee_id"},
		{"missing first name", func(r *RegisterRequest) { r.FirstName = "" }, "first_name"},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *RegisterRequest) { r.Password = "short" }, "password"},
		{"unknown role", func(r *RegisterRequest) { r.Role = "owner" }, "role"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := RegisterRequest{
				EmployeeID: "EMP-001",
				FirstName:  "Ada",
				LastName:   "Sari",
				Email:      "ada@dayflow.io",
				Password:   "supersecret",
			}
			tc.morph(&req)

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tc.field)
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, LoginRequest{Email: "ada@dayflow.io", Password: "x"}.Validate())
	assert.Error(t, LoginRequest{Email: "nope", Password: "x"}.Validate())
	assert.Error(t, LoginRequest{Email: "ada@dayflow.io"}.Validate())
}
