package blog

import (
	"strings"
	"unicode"
)

// Slugify 由标题派生URL slug：小写、非字母数字折叠为连字符
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // 抑制开头连字符
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
