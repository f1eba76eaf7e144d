package libs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712345678/media/media_abc.png", "media/media_abc"},
		{"https://res.cloudinary.com/demo/video/upload/media/media_clip.mp4", "media/media_clip"},
		{"https://res.cloudinary.com/demo/image/upload/v99/media_bare", "media_bare"},
		{"/uploads/media/local.png", ""},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, publicIDFromURL(tc.url), tc.url)
	}
}
