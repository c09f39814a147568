package tenant

import "strings"

// Slugify derives a URL-safe slug from a company name: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens, no leading or
// trailing hyphen. Returns "tenant" for names with no usable characters.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "tenant"
	}
	return slug
}
