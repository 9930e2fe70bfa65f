package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactSecret(t *testing.T) {
	assert.Equal(t, "[REDACTED]", RedactSecret("tok-1"))
	assert.Equal(t, "", RedactSecret(""))
}

func TestRedactPAN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "formatted", in: "4111 1111 1111 1111", want: "****1111"},
		{name: "bare", in: "4242424242424242", want: "****4242"},
		{name: "too short", in: "123", want: "[REDACTED]"},
		{name: "empty", in: "", want: "[REDACTED]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RedactPAN(tt.in))
		})
	}
}
