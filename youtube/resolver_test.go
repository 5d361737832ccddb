package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "standard watch URL",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "watch URL with extra params before v",
			input: "https://www.youtube.com/watch?t=30&v=dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "short link",
			input: "https://youtu.be/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "embed URL",
			input: "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "bare video ID",
			input: "dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "surrounding whitespace",
			input: "  https://youtu.be/dQw4w9WgXcQ  ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "random text",
			input:   "not a video at all",
			wantErr: true,
		},
		{
			name:    "bare ID of wrong length",
			input:   "shortid",
			wantErr: true,
		},
		{
			// URL patterns demand a full 11-character ID too; a watch URL
			// carrying a truncated ID is rejected rather than passed through
			name:    "watch URL with truncated ID",
			input:   "https://www.youtube.com/watch?v=short",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidReference)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "playlist URL",
			input: "https://www.youtube.com/playlist?list=PLabc123XYZ_-456",
			want:  "PLabc123XYZ_-456",
		},
		{
			name:  "watch URL with list param",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLabc123XYZ",
			want:  "PLabc123XYZ",
		},
		{
			name:  "bare playlist ID",
			input: "PLabc123XYZ",
			want:  "PLabc123XYZ",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "too short to be an ID",
			input:   "ab",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPlaylistID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidReference)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWatchURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", WatchURL("dQw4w9WgXcQ"))
}
