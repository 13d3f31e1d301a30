package mapping

import (
	"strings"

	"abook/internal/domain"
)

const hexDigits = "0123456789ABCDEF"

// encodeName turns a field name into the tail of a vCard property name,
// which may only hold letters, digits and '-'. Letters are upper-cased;
// any other byte becomes "-XX" (hex). A literal '-' is escaped only where
// it would read as the start of such a sequence.
func encodeName(f domain.Field) string {
	s := string(f)
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isLowerAlnum(c):
			sb.WriteByte(upper(c))
		case c == '-' && !(i+2 < len(s) && isHexLower(s[i+1]) && isHexLower(s[i+2])):
			sb.WriteByte('-')
		default:
			sb.WriteByte('-')
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0x0f])
		}
	}
	return sb.String()
}

// decodeName reverses encodeName. Property names are case-insensitive, so
// s may be in any case.
func decodeName(s string) domain.Field {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			sb.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return domain.Field(sb.String())
}

func isLowerAlnum(c byte) bool { return 'a' <= c && c <= 'z' || '0' <= c && c <= '9' }

func isHexLower(c byte) bool { return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' }

func isHex(c byte) bool { return isHexLower(c) || 'A' <= c && c <= 'F' }

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
