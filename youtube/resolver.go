package youtube

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidReference is returned when a string cannot be resolved to a
// YouTube video or playlist ID.
var ErrInvalidReference = errors.New("invalid YouTube reference")

// URL patterns are tried in priority order; the bare-ID check is the
// fallback. First match wins.
var videoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})`),
}

var bareVideoID = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

var playlistPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/playlist\?(?:[^#]*&)?list=([A-Za-z0-9_-]{5,})`),
	regexp.MustCompile(`youtube\.com/watch\?(?:[^#]*&)?list=([A-Za-z0-9_-]{5,})`),
}

var barePlaylistID = regexp.MustCompile(`^[A-Za-z0-9_-]{5,}$`)

// ExtractVideoID resolves a watch/short-link/embed URL or a bare 11-character
// video ID to the canonical video ID.
func ExtractVideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidReference
	}

	for _, pattern := range videoPatterns {
		if match := pattern.FindStringSubmatch(raw); match != nil {
			return match[1], nil
		}
	}

	if bareVideoID.MatchString(raw) {
		return raw, nil
	}

	return "", ErrInvalidReference
}

// ExtractPlaylistID resolves a playlist URL or a bare playlist ID to the
// canonical playlist ID.
func ExtractPlaylistID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidReference
	}

	for _, pattern := range playlistPatterns {
		if match := pattern.FindStringSubmatch(raw); match != nil {
			return match[1], nil
		}
	}

	if barePlaylistID.MatchString(raw) {
		return raw, nil
	}

	return "", ErrInvalidReference
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
