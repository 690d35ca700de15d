package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Slugify lowercases, strips non-alphanumerics and joins words with
// hyphens: "Nike Air Max 90" -> "nike-air-max-90".
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = fmt.Sprintf("item-%d", time.Now().Unix())
	}
	return slug
}
