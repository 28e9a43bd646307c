// Package binarytype classifies response content types as binary or
// textual. Binary payloads must be base64-encoded when a platform's
// result format only carries a single string body.
package binarytype

import (
	"mime"
	"strings"
)

// binaryTypes is the fixed table of media types treated as binary.
var binaryTypes = map[string]struct{}{
	"application/epub+zip":          {},
	"application/gzip":              {},
	"application/msgpack":           {},
	"application/octet-stream":      {},
	"application/pdf":               {},
	"application/vnd.ms-fontobject": {},
	"application/wasm":              {},
	"application/x-7z-compressed":   {},
	"application/x-bzip":            {},
	"application/x-bzip2":           {},
	"application/x-protobuf":        {},
	"application/x-rar-compressed":  {},
	"application/x-tar":             {},
	"application/zip":               {},
}

// textTypes overrides the prefix rules below for media types that are
// textual despite living under a binary top-level type.
var textTypes = map[string]struct{}{
	"image/svg+xml": {},
}

var binaryPrefixes = []string{
	"audio/",
	"font/",
	"image/",
	"video/",
}

var binarySuffixes = []string{
	"+gzip",
	"+msgpack",
	"+protobuf",
	"+zip",
}

// IsBinary reports whether the given content type should be treated
// as binary. Parameters (charset, boundary, ...) are ignored. Empty
// or unparsable content types classify as textual.
func IsBinary(contentType string) bool {
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType, _, _ = strings.Cut(contentType, ";")
		mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	}

	if mediaType == "" {
		return false
	}

	if _, ok := textTypes[mediaType]; ok {
		return false
	}

	if _, ok := binaryTypes[mediaType]; ok {
		return true
	}

	for _, prefix := range binaryPrefixes {
		if strings.HasPrefix(mediaType, prefix) {
			return true
		}
	}

	for _, suffix := range binarySuffixes {
		if strings.HasSuffix(mediaType, suffix) {
			return true
		}
	}

	return false
}
