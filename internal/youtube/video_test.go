package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVideoID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare id", raw: "dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "watch link", raw: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", want: "dQw4w9WgXcQ"},
		{name: "no scheme", raw: "youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "short link", raw: "https://youtu.be/dQw4w9WgXcQ?si=abc", want: "dQw4w9WgXcQ"},
		{name: "mobile", raw: "https://m.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "embed", raw: "https://www.youtube.com/embed/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "shorts", raw: "https://youtube.com/shorts/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "other host", raw: "https://vimeo.com/12345", wantErr: true},
		{name: "missing id", raw: "https://www.youtube.com/watch", wantErr: true},
		{name: "short id", raw: "https://youtu.be/abc", wantErr: true},
		{name: "empty", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVideoID(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=abcdefghijk", VideoURL("abcdefghijk"))
	assert.Equal(t, "https://www.youtube.com/watch?v=abcdefghijk&t=90s", WatchURLAt("abcdefghijk", 90.7))
	assert.Equal(t, "https://img.youtube.com/vi/abcdefghijk/maxresdefault.jpg", ThumbnailURL("abcdefghijk"))
}

func TestFormatOffset(t *testing.T) {
	assert.Equal(t, "0:00", FormatOffset(-3))
	assert.Equal(t, "0:07", FormatOffset(7.9))
	assert.Equal(t, "12:05", FormatOffset(725))
	assert.Equal(t, "1:00:01", FormatOffset(3601))
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "95", want: 95},
		{in: "1:35", want: 95},
		{in: "1:00:01", want: 3601},
		{in: "1:75", wantErr: true},
		{in: "a:10", wantErr: true},
		{in: "", wantErr: true},
		{in: "1:2:3:4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOffset(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOffset)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
