package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{59, "0.59"},
		{60, "1.00"},
		{185, "3.05"},
		{3599, "59.59"},
		{3600, "1.00.00"},
		{3725, "1.02.05"},
		{7325, "2.02.05"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatDuration(c.seconds), "FormatDuration(%d)", c.seconds)
	}
}
