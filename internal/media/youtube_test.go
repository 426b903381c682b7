package media

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbedURLCanonicalizesAllShapes(t *testing.T) {
	const want = "https://www.youtube.com/embed/dQw4w9WgXcQ"

	cases := map[string]string{
		"watch":            "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"watch with extra": "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
		"short link":       "https://youtu.be/dQw4w9WgXcQ",
		"short with query": "https://youtu.be/dQw4w9WgXcQ?si=abc123",
		"shorts":           "https://www.youtube.com/shorts/dQw4w9WgXcQ",
		"shorts query":     "https://www.youtube.com/shorts/dQw4w9WgXcQ?feature=share",
		"already embed":    "https://www.youtube.com/embed/dQw4w9WgXcQ",
	}

	for name, input := range cases {
		require.Equal(t, want, EmbedURL(input), "case %s", name)
	}
}

func TestEmbedURLPassthrough(t *testing.T) {
	require.Equal(t, "", EmbedURL(""))
	require.Equal(t, "https://vimeo.com/12345", EmbedURL("https://vimeo.com/12345"))
	require.Equal(t, "not a url", EmbedURL("not a url"))
}

func TestAudioID(t *testing.T) {
	const want = "dQw4w9WgXcQ"

	require.Equal(t, want, AudioID("https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=x"))
	require.Equal(t, want, AudioID("https://youtu.be/dQw4w9WgXcQ?si=abc"))
	require.Equal(t, want, AudioID("https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1"))

	require.Equal(t, "", AudioID(""))
	require.Equal(t, "", AudioID("https://soundcloud.com/track/1"))
}
