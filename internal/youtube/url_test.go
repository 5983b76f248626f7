package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Classification
	}{
		{
			name: "standard watch url",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: Classification{Source: SourceYouTube, VideoID: "dQw4w9WgXcQ"},
		},
		{
			name: "short link",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			want: Classification{Source: SourceYouTube, VideoID: "dQw4w9WgXcQ"},
		},
		{
			name: "embed url",
			url:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want: Classification{Source: SourceYouTube, VideoID: "dQw4w9WgXcQ"},
		},
		{
			name: "shorts url",
			url:  "https://youtube.com/shorts/dQw4w9WgXcQ",
			want: Classification{Source: SourceYouTube, VideoID: "dQw4w9WgXcQ"},
		},
		{
			name: "watch url with extra params",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s&list=PLx",
			want: Classification{Source: SourceYouTube, VideoID: "dQw4w9WgXcQ"},
		},
		{
			name: "no scheme",
			url:  "youtu.be/dQw4w9WgXcQ",
			want: Classification{Source: SourceYouTube, VideoID: "dQw4w9WgXcQ"},
		},
		{
			name: "mobile host",
			url:  "https://m.youtube.com/watch?v=dQw4w9WgXcQ",
			want: Classification{Source: SourceYouTube, VideoID: "dQw4w9WgXcQ"},
		},
		{
			name: "generic mp4 link",
			url:  "https://example.com/v.mp4",
			want: Classification{Source: SourceOther},
		},
		{
			name: "youtube url without id",
			url:  "https://www.youtube.com/watch",
			want: Classification{Source: SourceOther},
		},
		{
			name: "short id token",
			url:  "https://youtu.be/abc",
			want: Classification{Source: SourceOther},
		},
		{
			name: "empty string",
			url:  "",
			want: Classification{Source: SourceOther},
		},
		{
			name: "garbage input",
			url:  "ht!tp://%%%",
			want: Classification{Source: SourceOther},
		},
		{
			name: "playlist url",
			url:  "https://www.youtube.com/playlist?list=PLx123",
			want: Classification{Source: SourceOther},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.url))
		})
	}
}
