package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Role
		expectedError bool
	}{
		{name: "user", input: "user", expected: RoleUser},
		{name: "admin", input: "admin", expected: RoleAdmin},
		{name: "approved", input: "approved", expected: RoleApproved},
		{name: "banned", input: "banned", expected: RoleBanned},
		{name: "empty defaults to user", input: "", expected: RoleUser},
		{name: "unknown role rejected", input: "superadmin", expectedError: true},
		{name: "case sensitive", input: "Admin", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := ParseRole(tt.input)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, role)
			}
		})
	}
}
