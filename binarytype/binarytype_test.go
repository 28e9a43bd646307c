package binarytype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        bool
	}{
		{"empty", "", false},
		{"html", "text/html", false},
		{"html with charset", "text/html; charset=utf-8", false},
		{"json", "application/json", false},
		{"json api", "application/vnd.api+json", false},
		{"octet stream", "application/octet-stream", true},
		{"pdf", "application/pdf", true},
		{"zip", "application/zip", true},
		{"zip suffix", "application/vnd.openxmlformats-officedocument.wordprocessingml.document+zip", true},
		{"png", "image/png", true},
		{"jpeg with params", "image/jpeg; quality=80", true},
		{"svg is text", "image/svg+xml", false},
		{"mp3", "audio/mpeg", true},
		{"mp4", "video/mp4", true},
		{"woff2", "font/woff2", true},
		{"wasm", "application/wasm", true},
		{"mixed case", "IMAGE/PNG", true},
		{"malformed params still classified", "image/png; =", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBinary(tt.contentType))
		})
	}
}
