package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "integer", raw: "249", want: 249},
		{name: "decimal", raw: "249.50", want: 249.50},
		{name: "surrounding whitespace", raw: " 99.9 ", want: 99.9},
		{name: "non-numeric becomes zero", raw: "abc", want: 0},
		{name: "currency symbol becomes zero", raw: "₱249", want: 0},
		{name: "empty becomes zero", raw: "", want: 0},
		{name: "negative passes through", raw: "-5", want: -5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParsePrice(tc.raw))
		})
	}
}
