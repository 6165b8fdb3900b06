package util

import "strings"

func isASCII(b byte) bool {
	return b < 0x80
}

// AddSpace adds a space, if not present, between ASCII and non-ASCII characters.
// For example, "中文english" -> "中文 english"
func AddSpace(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && isASCII(s[i]) != isASCII(s[i-1]) && s[i-1] != ' ' && s[i] != ' ' {
			b.WriteByte(' ')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
