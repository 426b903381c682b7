// Package media canonicalizes externally supplied video references.
package media

import "strings"

// EmbedURL converts a YouTube URL in any of the accepted shapes (watch?v=,
// youtu.be short link, already-embed, shorts) into the canonical embed URL.
// Unrecognised input is returned unchanged rather than rejected, and an empty
// input yields an empty output.
func EmbedURL(raw string) string {
	if raw == "" {
		return ""
	}

	switch {
	case strings.Contains(raw, "youtube.com/watch?v="):
		return embed(extract(raw, "v=", "&"))
	case strings.Contains(raw, "youtu.be/"):
		return embed(extract(raw, "youtu.be/", "?"))
	case strings.Contains(raw, "youtube.com/embed/"):
		return raw
	case strings.Contains(raw, "youtube.com/shorts/"):
		return embed(extract(raw, "shorts/", "?"))
	}

	return raw
}

// AudioID extracts the bare video identifier for audio playback. Unrecognised
// or empty input yields an empty identifier.
func AudioID(raw string) string {
	if raw == "" {
		return ""
	}

	switch {
	case strings.Contains(raw, "youtube.com/watch?v="):
		return extract(raw, "v=", "&")
	case strings.Contains(raw, "youtu.be/"):
		return extract(raw, "youtu.be/", "?")
	case strings.Contains(raw, "youtube.com/embed/"):
		return extract(raw, "embed/", "?")
	}

	return ""
}

func embed(videoID string) string {
	return "https://www.youtube.com/embed/" + videoID
}

// extract slices the string after marker and truncates at the stop rune.
func extract(raw, marker, stop string) string {
	id := raw[strings.Index(raw, marker)+len(marker):]
	if cut := strings.Index(id, stop); cut != -1 {
		id = id[:cut]
	}
	return id
}
