package util

import "net/url"

// IsURL reports whether text is an absolute URL with both a scheme and an
// authority. Input that fails to parse is not a URL.
func IsURL(text string) bool {
	u, err := url.Parse(text)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
