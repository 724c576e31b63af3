package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salestrackhq/salestrack_app/internal/utils"
)

func TestDeriveUsername(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Kim Lee", "kimlee"},
		{"  O'Brien ", "obrien"},
		{"Anna-Maria 2", "annamaria2"},
		{"李明", "李明"},
		{"!!!", "staff"},
		{"", "staff"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, utils.DeriveUsername(tc.in), "input %q", tc.in)
	}
}
