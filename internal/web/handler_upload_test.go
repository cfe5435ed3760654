package web

import (
	"html/template"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedImageMIME(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantMIME string
		wantOK   bool
	}{
		{"JPEG", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}, "image/jpeg", true},
		{"PNG", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}, "image/png", true},
		{"GIF", []byte("GIF89a"), "image/gif", true},
		{"WebP", append([]byte("RIFF\x00\x00\x00\x00WEBP"), make([]byte, 10)...), "image/webp", true},
		{"RIFF but not WebP", append([]byte("RIFF\x00\x00\x00\x00WAVE"), make([]byte, 10)...), "", false},
		{"PDF disguised as image", []byte("%PDF-1.4 malicious content"), "", false},
		{"HEIC", append([]byte("\x00\x00\x00\x18ftypheic"), make([]byte, 10)...), "", false},
		{"empty", []byte{}, "", false},
		{"too short for WebP check", []byte("RIFF"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMIME, gotOK := allowedImageMIME(tt.data)
			assert.Equal(t, tt.wantOK, gotOK)
			assert.Equal(t, tt.wantMIME, gotMIME)
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		value   string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.SetPathValue("id", tt.value)
			got, err := parseID(r, "id")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeref(t *testing.T) {
	s := "Silver"
	n := int64(140)
	var nilString *string

	assert.Equal(t, "Silver", deref(&s))
	assert.Equal(t, "140", deref(&n))
	assert.Equal(t, "", deref(nilString))
	assert.Equal(t, "", deref(nil))
	assert.Equal(t, "plain", deref("plain"))
}

func TestSafeImageURL(t *testing.T) {
	sig := "data:image/png;base64,AAAA"
	bad := "javascript:alert(1)"

	assert.Equal(t, template.URL(sig), safeImageURL(&sig))
	assert.Equal(t, template.URL("/uploads/item_1.jpg"), safeImageURL("/uploads/item_1.jpg"))
	assert.Equal(t, template.URL(""), safeImageURL(&bad))
	assert.Equal(t, template.URL(""), safeImageURL((*string)(nil)))
}
