package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOrderNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   bool
	}{
		{name: "valid", number: "2404815702", want: true},
		{name: "valid short", number: "79927398713", want: true},
		{name: "bad check digit", number: "2404815703", want: false},
		{name: "empty", number: "", want: false},
		{name: "letters", number: "24048157O2", want: false},
		{name: "signed", number: "-2404815702", want: false},
		{name: "too long", number: "12345678901234567897", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOrderNumber(tt.number))
		})
	}
}
