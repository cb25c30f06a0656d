// Package rut formats and validates Chilean national identifiers (RUT).
//
// A formatted RUT looks like "12.345.678-9": a body of up to eight digits
// grouped in threes and a single check digit (0-9 or K) after a dash.
package rut

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// MaxRawLength is the maximum number of significant characters
// (8 body digits + 1 check digit) kept by Format.
const MaxRawLength = 9

// ErrInvalid is returned by Validate for strings that are not formatted RUTs.
var ErrInvalid = errors.New("RUT inválido")

var formatted = regexp.MustCompile(`^\d{1,3}(\.\d{3}){2}-[\dkK]$`)

// Clean drops every character except digits and k/K.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == 'k' || r == 'K' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format renders raw user input as "NN.NNN.NNN-D".
//
// Input is cleaned and capped at MaxRawLength characters. The last character
// becomes the uppercased check digit; a K anywhere else is dropped so the
// body is always numeric. With fewer than two characters the cleaned input
// is returned as is.
func Format(s string) string {
	raw := Clean(s)
	if len(raw) > MaxRawLength {
		raw = raw[:MaxRawLength]
	}
	if len(raw) <= 1 {
		return raw
	}

	body := strings.Map(func(r rune) rune {
		if r == 'k' || r == 'K' {
			return -1
		}
		return r
	}, raw[:len(raw)-1])
	dv := strings.ToUpper(raw[len(raw)-1:])

	var b strings.Builder
	for i, r := range body {
		if i > 0 && (len(body)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte('-')
	b.WriteString(dv)
	return b.String()
}

// Unformat removes the thousands separators, keeping the dash.
func Unformat(s string) string {
	return strings.ReplaceAll(s, ".", "")
}

// Validate reports whether s has the canonical formatted shape.
// It does not verify the check digit; see VerifyCheckDigit.
func Validate(s string) error {
	if !formatted.MatchString(s) {
		return ErrInvalid
	}
	return nil
}

// CheckDigit computes the modulo-11 verifier for a numeric body.
// It returns "" when body contains anything but digits.
func CheckDigit(body string) string {
	if body == "" {
		return ""
	}
	sum, factor := 0, 2
	for i := len(body) - 1; i >= 0; i-- {
		d := body[i]
		if d < '0' || d > '9' {
			return ""
		}
		sum += int(d-'0') * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}
	switch rest := 11 - sum%11; rest {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.Itoa(rest)
	}
}

// VerifyCheckDigit reports whether the last character of s is the correct
// verifier for the rest. Dots and dashes are ignored.
func VerifyCheckDigit(s string) bool {
	raw := strings.ToUpper(Clean(s))
	if len(raw) < 2 {
		return false
	}
	body, dv := raw[:len(raw)-1], raw[len(raw)-1:]
	return CheckDigit(body) == dv
}
