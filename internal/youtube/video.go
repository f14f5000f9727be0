// Package youtube holds the small amount of YouTube knowledge the notes need:
// extracting a video id from a pasted link, building watch and thumbnail
// URLs, and formatting time offsets.
package youtube

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidURL    = errors.New("youtube: invalid URL")
	ErrInvalidOffset = errors.New("youtube: invalid time offset")
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ParseVideoID accepts a bare video id or any of the common link forms
// (watch?v=, youtu.be/, /embed/, /shorts/, /live/) and returns the id.
func ParseVideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if videoIDPattern.MatchString(raw) {
		return raw, nil
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")

	var id string
	switch host {
	case "youtu.be":
		id = strings.Trim(u.Path, "/")
	case "youtube.com", "music.youtube.com", "youtube-nocookie.com":
		if v := u.Query().Get("v"); v != "" {
			id = v
			break
		}
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) == 2 {
			switch parts[0] {
			case "embed", "shorts", "live", "v":
				id = parts[1]
			}
		}
	default:
		return "", fmt.Errorf("%w: unsupported host %q", ErrInvalidURL, u.Host)
	}

	if !videoIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: no video id in %q", ErrInvalidURL, raw)
	}
	return id, nil
}

// VideoURL returns the canonical watch link.
func VideoURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// WatchURLAt returns a watch link that starts playback at seconds.
func WatchURLAt(videoID string, seconds float64) string {
	return fmt.Sprintf("%s&t=%ds", VideoURL(videoID), int(math.Floor(seconds)))
}

// ThumbnailURL returns the max-resolution thumbnail image link.
func ThumbnailURL(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/maxresdefault.jpg"
}

// FormatOffset renders seconds as m:ss, or h:mm:ss from one hour on.
func FormatOffset(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// ParseOffset is the inverse of FormatOffset. Plain seconds ("95") are
// accepted too.
func ParseOffset(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidOffset
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}

	var total float64
	for i, p := range parts {
		n, err := strconv.ParseFloat(p, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
		}
		if i > 0 && n >= 60 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
		}
		total = total*60 + n
	}
	return total, nil
}
