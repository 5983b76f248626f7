package youtube

import (
	"net/url"
	"regexp"
	"strings"
)

// Source identifies where a video URL points.
type Source string

const (
	SourceYouTube Source = "youtube"
	SourceOther   Source = "other"
)

// Classification is the result of classifying a raw video URL.
// VideoID is set only when Source is SourceYouTube.
type Classification struct {
	Source  Source `json:"source"`
	VideoID string `json:"video_id,omitempty"`
}

// YouTube video IDs are 11 characters from the base64url alphabet.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Classify determines the source type of a raw video URL. It recognizes
// standard watch URLs, short youtu.be links and embed URLs, and extracts the
// video ID. Malformed or unrecognized input classifies as SourceOther; this
// function never fails.
func Classify(rawURL string) Classification {
	other := Classification{Source: SourceOther}

	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return other
	}
	if !strings.Contains(rawURL, "://") {
		// The admin form accepts URLs without a scheme.
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return other
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	var id string
	switch host {
	case "youtube.com", "m.youtube.com":
		switch {
		case u.Path == "/watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/embed/"):
			id = strings.TrimPrefix(u.Path, "/embed/")
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = strings.TrimPrefix(u.Path, "/shorts/")
		}
	case "youtu.be":
		id = strings.TrimPrefix(u.Path, "/")
	default:
		return other
	}

	id = strings.Trim(id, "/")
	if !videoIDPattern.MatchString(id) {
		return other
	}
	return Classification{Source: SourceYouTube, VideoID: id}
}
