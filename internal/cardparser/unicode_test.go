package cardparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidenClasses(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"plain text untouched", `Cardholder`, `Cardholder`},
		{"space outside class", `a\s+b`, `a[` + spaceClass + `]+b`},
		{"digit outside class", `\d{4}`, `[` + digitClass + `]{4}`},
		{"negated outside class", `\S\D`, `[^` + spaceClass + `][^` + digitClass + `]`},
		{"inside class", `[-\s]`, `[-` + spaceClass + `]`},
		{"negated inside class kept", `[\S]`, `[\S]`},
		{"other escapes kept", `\.\w\b`, `\.\w\b`},
		{"escaped backslash", `\\s`, `\\s`},
		{"quoted literal", `\Q\s\E\s`, `\Q\s\E[` + spaceClass + `]`},
		{"leading bracket in class", `[]\d]`, `[]` + digitClass + `]`},
		{"posix class", `[[:alpha:]\d]`, `[[:alpha:]` + digitClass + `]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, widenClasses(tt.expr))
		})
	}
}

func TestCompilePattern_MatchesUnicodeSpace(t *testing.T) {
	re, err := compilePattern(`^Total\s+Due\s*:\s*(\d+)$`)
	assert.NoError(t, err)

	for _, space := range []string{" ", "\t", "\v", "\u00a0", "\u2009", "\u202f", "\u3000", "\u2028", "\u0085", "\x1f"} {
		sub := re.FindStringSubmatch("Total" + space + "Due:" + space + "42")
		if assert.NotNil(t, sub, "%U", []rune(space)[0]) {
			assert.Equal(t, "42", sub[1])
		}
	}

	assert.Nil(t, re.FindStringSubmatch("Total\u200bDue: 42"), "zero-width space is not whitespace")
}

func TestCompilePattern_MatchesUnicodeDigits(t *testing.T) {
	re, err := compilePattern(`(\d{4})$`)
	assert.NoError(t, err)
	assert.Equal(t, "१२३४", re.FindStringSubmatch("XXXX १२३४")[1])
}

func TestTrimSpace(t *testing.T) {
	assert.Equal(t, "a b", trimSpace(" \x1c a b\u3000\n"))
	assert.Equal(t, "", trimSpace("\u2028 \u00a0 "))
}
