package rut

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "single char kept as is", in: "1", want: "1"},
		{name: "two chars", in: "12", want: "1-2"},
		{name: "four chars", in: "1234", want: "123-4"},
		{name: "five chars", in: "12345", want: "1.234-5"},
		{name: "eight chars", in: "12345678", want: "1.234.567-8"},
		{name: "nine chars", in: "123456789", want: "12.345.678-9"},
		{name: "capped at nine", in: "1234567890123", want: "12.345.678-9"},
		{name: "lowercase k uppercased", in: "12345678k", want: "12.345.678-K"},
		{name: "already formatted", in: "12.345.678-9", want: "12.345.678-9"},
		{name: "garbage removed", in: "ab12 34x5-6", want: "12.345-6"},
		{name: "k inside body dropped", in: "12k45", want: "124-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestFormat_ShapeProperty(t *testing.T) {
	inputs := []string{"", "k", "9k", "1.2.3.4.5.6.7.8.9", "kkkkkkkkk", "---", "7654321", "99999999K"}
	for _, in := range inputs {
		out := Format(in)
		require.LessOrEqual(t, strings.Count(out, "-"), 1, "input %q", in)
		if i := strings.Index(out, "-"); i >= 0 {
			for _, r := range out[:i] {
				require.True(t, r == '.' || (r >= '0' && r <= '9'), "input %q gave %q", in, out)
			}
		}
	}
}

func TestUnformat(t *testing.T) {
	assert.Equal(t, "12345678-9", Unformat("12.345.678-9"))
	assert.Equal(t, "1-2", Unformat("1-2"))
}

func TestValidate(t *testing.T) {
	valid := []string{"12.345.678-9", "1.234.567-K", "123.456.789-k", "12.345.678-0"}
	for _, s := range valid {
		assert.NoError(t, Validate(s), s)
	}

	invalid := []string{"12345678-9", "12.345.678", "12.345.678-99", "1234.567.890-1", "", "12.345.678-X"}
	for _, s := range invalid {
		err := Validate(s)
		require.ErrorIs(t, err, ErrInvalid, s)
		assert.Equal(t, "RUT inválido", err.Error())
	}
}

func TestCheckDigit(t *testing.T) {
	assert.Equal(t, "5", CheckDigit("12345678"))
	assert.Equal(t, "K", CheckDigit("10000013"))
	assert.Equal(t, "", CheckDigit(""))
	assert.Equal(t, "", CheckDigit("12a"))
}

func TestVerifyCheckDigit(t *testing.T) {
	assert.True(t, VerifyCheckDigit("12.345.678-5"))
	assert.True(t, VerifyCheckDigit("12345678-5"))
	assert.False(t, VerifyCheckDigit("12.345.678-9"))
	assert.False(t, VerifyCheckDigit("5"))
}
