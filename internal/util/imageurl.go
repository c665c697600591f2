// Package util holds small shared helpers with no domain dependencies.
package util

import (
	"net/url"
	"strings"
)

// ResolveImageURL turns a stored image path into an absolute URL rooted at
// baseURL. Already-absolute URLs pass through untouched. Relative paths are
// corrected for the legacy conventions found in old product rows: paths that
// start with "productos/" were written without their "storage/" prefix, and
// bare filenames were written relative to "storage/productos/".
func ResolveImageURL(baseURL, imagePath string) string {
	if imagePath == "" {
		return ""
	}

	if isAbsoluteURL(imagePath) {
		return imagePath
	}

	if strings.HasPrefix(imagePath, "productos/") {
		imagePath = "storage/" + imagePath
	}

	if !strings.HasPrefix(imagePath, "storage/") && !strings.HasPrefix(imagePath, "/storage/") {
		if strings.HasPrefix(imagePath, "/") {
			imagePath = "storage/productos" + imagePath
		} else {
			imagePath = "storage/productos/" + imagePath
		}
	}

	return joinToBase(baseURL, imagePath)
}

// EnsureAbsoluteURL absolutizes URLs already stored in purchase rows, which
// may predate ResolveImageURL. Protocol-relative URLs ("//host/img.jpg") get
// an http scheme; domain-relative paths are joined to baseURL.
func EnsureAbsoluteURL(baseURL, rawURL string) string {
	if rawURL == "" {
		return ""
	}

	if isAbsoluteURL(rawURL) {
		return rawURL
	}

	if strings.HasPrefix(rawURL, "//") {
		return "http:" + rawURL
	}

	return joinToBase(baseURL, rawURL)
}

func isAbsoluteURL(raw string) bool {
	parsed, err := url.Parse(raw)

	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}

func joinToBase(baseURL, path string) string {
	base := strings.TrimRight(baseURL, "/")
	if strings.HasPrefix(path, "/") {
		return base + path
	}

	return base + "/" + path
}
