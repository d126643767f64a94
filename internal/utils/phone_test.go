package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber_AcceptedForms(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"local form", "0244123456", "0244123456"},
		{"plus prefix", "+233244123456", "0244123456"},
		{"bare country code", "233244123456", "0244123456"},
		{"with spaces", "024 412 3456", "0244123456"},
		{"with dashes", "024-412-3456", "0244123456"},
		{"other carrier block", "0550123456", "0550123456"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhoneNumber(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizePhoneNumber_Idempotent(t *testing.T) {
	once, err := NormalizePhoneNumber("+233244123456")
	assert.NoError(t, err)

	twice, err := NormalizePhoneNumber(once)
	assert.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalizePhoneNumber_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "024412345"},
		{"too long", "02441234567"},
		{"unsupported carrier block", "0100123456"},
		{"foreign country code", "+1244123456"},
		{"letters", "02441abcde"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizePhoneNumber(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestValidatePIN(t *testing.T) {
	assert.True(t, ValidatePIN("0000"))
	assert.True(t, ValidatePIN("4821"))

	assert.False(t, ValidatePIN(""))
	assert.False(t, ValidatePIN("123"))
	assert.False(t, ValidatePIN("12345"))
	assert.False(t, ValidatePIN("12a4"))
	assert.False(t, ValidatePIN(" 123"))
}
