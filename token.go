package sigil

import (
	"encoding/base32"
	"strconv"
	"strings"
	"unicode/utf8"
)

// alphabet is the RFC 4648 base-32 alphabet. A symbol's index in it is the
// value used for parameter derivation.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// HashToken holds the two parameters derived from one character.
// Both values are in [0, 31].
type HashToken struct {
	Val1 int
	Val2 int
}

// EncodeText returns the standard base-32 encoding of the UTF-8 bytes of
// text with the trailing padding removed.
func EncodeText(text string) string {
	return strings.TrimRight(base32.StdEncoding.EncodeToString([]byte(text)), "=")
}

// DecodeToken reverses EncodeText. The token may be given with or without
// its padding.
func DecodeToken(token string) (string, error) {
	body := strings.TrimRight(token, "=")

	// A base-32 group of 8 symbols carries 5 bytes; 1, 3 or 6 trailing
	// symbols cannot come from any byte count.
	switch len(body) % 8 {
	case 1, 3, 6:
		return "", &DecodeError{Token: token, Reason: "impossible token length"}
	}
	if i := strings.IndexFunc(body, func(r rune) bool { return !strings.ContainsRune(alphabet, r) }); i >= 0 {
		return "", &DecodeError{Token: token, Reason: "invalid symbol at offset " + strconv.Itoa(i)}
	}

	if rem := len(body) % 8; rem != 0 {
		body += strings.Repeat("=", 8-rem)
	}
	data, err := base32.StdEncoding.DecodeString(body)
	if err != nil {
		return "", &DecodeError{Token: token, Reason: "malformed token", Err: err}
	}
	if !utf8.Valid(data) {
		return "", &DecodeError{Token: token, Reason: "decoded bytes are not valid UTF-8"}
	}
	return string(data), nil
}

// CharToken derives the parameters of one character from the first two
// symbols of its encoding. For single-byte characters Val2 is always a
// multiple of 4, since its low two bits come from padding.
func CharToken(r rune) HashToken {
	enc := EncodeText(string(r))
	return HashToken{
		Val1: strings.IndexByte(alphabet, enc[0]),
		Val2: strings.IndexByte(alphabet, enc[1]),
	}
}
