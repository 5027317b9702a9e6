// Package icons holds the glyph sets used to mark suggestion rows.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds one label per suggestion kind.
type Icons struct {
	Media   string
	Artist  string
	Album   string
	Episode string
	Resume  string
}

var (
	nerdIcons = Icons{
		Media:   "\U000f0fce", // nf-md-movie_open
		Artist:  "\uf007",     // nf-fa-user
		Album:   "\U000f0025", // nf-md-album
		Episode: "\U000f0381", // nf-md-television_classic
		Resume:  "\U000f040a", // nf-md-play
	}

	unicodeIcons = Icons{
		Media:   "🎬",
		Artist:  "👤",
		Album:   "💿",
		Episode: "📺",
		Resume:  "⏯",
	}

	noneIcons = Icons{
		Media:   "media",
		Artist:  "artist",
		Album:   "album",
		Episode: "episode",
		Resume:  "resume",
	}

	current = noneIcons
)

// Init selects the icon set. Unknown styles fall back to plain labels.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Current returns the active icon set.
func Current() Icons {
	return current
}

// ForKind returns the label for a row key prefix such as "album_".
// Unknown prefixes give "".
func ForKind(prefix string) string {
	switch prefix {
	case "media_":
		return current.Media
	case "artist_":
		return current.Artist
	case "album_":
		return current.Album
	case "episode_":
		return current.Episode
	case "resume_":
		return current.Resume
	}
	return ""
}
