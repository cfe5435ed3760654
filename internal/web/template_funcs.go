package web

import (
	"fmt"
	"html/template"
	"strings"
)

// deref renders optional columns; nil becomes the empty string.
func deref(v any) string {
	switch p := v.(type) {
	case *string:
		if p == nil {
			return ""
		}
		return *p
	case *int64:
		if p == nil {
			return ""
		}
		return fmt.Sprint(*p)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}

// safeImageURL lets stored signature data URLs reach an <img src>. Anything
// that is not an image data URL or a local upload path is dropped.
func safeImageURL(v any) template.URL {
	s := deref(v)
	if strings.HasPrefix(s, "data:image/") || strings.HasPrefix(s, "/uploads/") {
		return template.URL(s)
	}
	return ""
}
