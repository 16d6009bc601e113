package validator

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordForm struct {
	Password string `validate:"required,password_bytes"`
}

func TestValidate_PasswordBytes(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"ascii at limit", strings.Repeat("a", 72), true},
		{"ascii over limit", strings.Repeat("a", 73), false},
		{"kana at limit", strings.Repeat("あ", 24), true},
		{"kana under rune limit but over byte limit", strings.Repeat("あ", 30), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&passwordForm{Password: tt.password})
			if tt.valid {
				assert.NoError(t, err)

				return
			}

			var fieldErrs validator.ValidationErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, "Password", fieldErrs[0].Field())
		})
	}
}
