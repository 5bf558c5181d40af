package media

import (
	"strconv"
	"strings"

	"github.com/benbjohnson/clock"
)

// URLBuilder turns stored relative asset paths into fetchable URLs
type URLBuilder struct {
	imageBase string
	videoBase string
	clock     clock.Clock
}

// NewURLBuilder creates a builder over the configured asset hosts
func NewURLBuilder(imageBase, videoBase string, clk clock.Clock) *URLBuilder {
	if clk == nil {
		clk = clock.New()
	}
	return &URLBuilder{
		imageBase: strings.TrimRight(imageBase, "/"),
		videoBase: strings.TrimRight(videoBase, "/"),
		clock:     clk,
	}
}

// ImageURL resolves a stored image path. With fresh set, a cache-busting
// timestamp is appended; callers request that after an update may have
// replaced the asset at the same path.
func (b *URLBuilder) ImageURL(imagePath string, fresh bool) string {
	return b.resolve(b.imageBase, "/uploads/images/", imagePath, fresh)
}

// VideoURL resolves a stored video path
func (b *URLBuilder) VideoURL(videoPath string, fresh bool) string {
	return b.resolve(b.videoBase, "/uploads/videos/", videoPath, fresh)
}

func (b *URLBuilder) resolve(base, defaultPrefix, path string, fresh bool) string {
	if path == "" {
		return ""
	}

	var full string
	switch {
	case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
		full = path
	case strings.HasPrefix(path, "/uploads/"):
		full = base + path
	case strings.HasPrefix(path, "uploads/"):
		full = base + "/" + path
	default:
		// Bare filename
		full = base + defaultPrefix + path
	}

	if fresh {
		full += "?t=" + strconv.FormatInt(b.clock.Now().UnixMilli(), 10)
	}
	return full
}
