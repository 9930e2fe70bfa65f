package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatExpiry(t *testing.T) {
	tests := []struct {
		name   string
		expiry string
		want   string
	}{
		{name: "typical", expiry: "04 / 27", want: "042027"},
		{name: "december", expiry: "12 / 30", want: "123030"},
		{name: "january", expiry: "01 / 25", want: "012025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatExpiry(tt.expiry))
		})
	}
}

func TestFormatExpiryNotIdempotent(t *testing.T) {
	once := FormatExpiry("04 / 27")
	require.Equal(t, "042027", once)

	// Reapplying to an already-formatted value corrupts it. The function
	// must only ever be called on the raw "MM / YY" display value.
	twice := FormatExpiry(once)
	assert.NotEqual(t, once, twice)
}

func TestFormatCardNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{name: "interior spaces", number: "4111 1111 1111 1111", want: "4111111111111111"},
		{name: "tabs and newlines", number: "4111\t1111\n1111 1111", want: "4111111111111111"},
		{name: "leading and trailing", number: " 4242424242424242 ", want: "4242424242424242"},
		{name: "digits only is a fixed point", number: "4111111111111111", want: "4111111111111111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCardNumber(tt.number))
		})
	}
}

func TestFormatCardNumberIdempotentOnDigits(t *testing.T) {
	once := FormatCardNumber("4111 1111 1111 1111")
	assert.Equal(t, once, FormatCardNumber(once))
}
