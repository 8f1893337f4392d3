package cardparser

import (
	"regexp"
	"strings"
	"unicode"
)

// Character class bodies for Unicode whitespace and decimal digits. RE2's
// \s and \d are ASCII-only, but extracted PDF text routinely carries
// U+00A0 and other Unicode spaces between words.
const (
	spaceClass = `\t\n\v\f\r \x{1c}-\x{1f}\x{85}\p{Z}`
	digitClass = `\p{Nd}`
)

// compilePattern compiles expr after widening \s, \S, \d and \D to their
// Unicode meaning. Escapes inside \Q...\E and POSIX classes are left alone.
func compilePattern(expr string) (*regexp.Regexp, error) {
	return regexp.Compile(widenClasses(expr))
}

func mustCompilePattern(expr string) *regexp.Regexp {
	return regexp.MustCompile(widenClasses(expr))
}

func widenClasses(expr string) string {
	var b strings.Builder
	inClass := false

	for i := 0; i < len(expr); i++ {
		c := expr[i]

		switch {
		case c == '\\' && i+1 < len(expr):
			next := expr[i+1]
			i++

			if next == 'Q' {
				end := strings.Index(expr[i+1:], `\E`)
				if end < 0 {
					b.WriteString(expr[i-1:])
					return b.String()
				}
				b.WriteString(expr[i-1 : i+1+end+2])
				i += end + 2
				continue
			}

			body, negated := "", false
			switch next {
			case 's':
				body = spaceClass
			case 'S':
				body, negated = spaceClass, true
			case 'd':
				body = digitClass
			case 'D':
				body, negated = digitClass, true
			}

			switch {
			case body == "" || (negated && inClass):
				b.WriteByte(c)
				b.WriteByte(next)
			case inClass:
				b.WriteString(body)
			case negated:
				b.WriteString("[^" + body + "]")
			default:
				b.WriteString("[" + body + "]")
			}

		case c == '[' && inClass && strings.HasPrefix(expr[i:], "[:"):
			end := strings.Index(expr[i:], ":]")
			if end < 0 {
				b.WriteByte(c)
				continue
			}
			b.WriteString(expr[i : i+end+2])
			i += end + 1

		case c == '[' && !inClass:
			inClass = true
			b.WriteByte(c)
			if i+1 < len(expr) && expr[i+1] == '^' {
				b.WriteByte('^')
				i++
			}
			if i+1 < len(expr) && expr[i+1] == ']' {
				b.WriteByte(']')
				i++
			}

		case c == ']' && inClass:
			inClass = false
			b.WriteByte(c)

		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// isSpace is unicode.IsSpace plus the ASCII separators U+001C..U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}
