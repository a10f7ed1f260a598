package util

import "strings"

// AbsoluteURL prefixes site-relative hrefs with the source origin. Already
// absolute links pass through untouched.
func AbsoluteURL(origin, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return origin + href
}

// JobIDFromURL extracts the stable id from URL-keyed boards: everything after
// the last "/job/" path marker. Returns "" when the marker is absent.
func JobIDFromURL(u string) string {
	const marker = "/job/"
	i := strings.LastIndex(u, marker)
	if i < 0 {
		return ""
	}
	return u[i+len(marker):]
}
