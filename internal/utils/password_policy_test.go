package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salestrackhq/salestrack_app/internal/utils"
)

func TestValidatePasswordStrength(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"too short", "Abc12", utils.ErrPasswordTooShort},
		{"no uppercase", "abcdef1", utils.ErrPasswordNoUpper},
		{"no digit", "Abcdef", utils.ErrPasswordNoDigit},
		{"minimum valid", "Abcde1", nil},
		{"longer valid", "Str0ngPass", nil},
		{"empty", "", utils.ErrPasswordTooShort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := utils.ValidatePasswordStrength(tc.password)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
