package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"1234567890", true},
		{"12345", false},
		{"12345678901", false},
		{"123456789a", false},
		{"", false},
		{" 123456789", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidPhone(tc.phone), "phone %q", tc.phone)
	}
}

func TestValidAddress(t *testing.T) {
	cases := []struct {
		address string
		want    bool
	}{
		{"123 Main St", true},
		{"Rd", false},
		{"", false},
		{"     ", false},
		{"12345", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidAddress(tc.address), "address %q", tc.address)
	}
}

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@b.co", true},
		{"a@b", false},
		{"a.b@c", false},
		{"noatsign.com", false},
		{"a@@b.com", false},
		{"has space@b.com", false},
		{"a@b..com", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidEmail(tc.email), "email %q", tc.email)
	}
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Alice"))
	assert.False(t, ValidName(""))
}
