package metadata

import (
	"fmt"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type fileEntry struct {
	ID          string   `koanf:"id"`
	Type        string   `koanf:"type"`
	Title       string   `koanf:"title"`
	Summary     string   `koanf:"summary"`
	ReleaseDate string   `koanf:"release_date"`
	Backdrop    string   `koanf:"backdrop"`
	Genres      []string `koanf:"genres"`
	MediaID     int64    `koanf:"media_id"`
	MediaPath   string   `koanf:"media_path"`
	ShowID      string   `koanf:"show_id"`
	Season      int      `koanf:"season"`
	Episode     int      `koanf:"episode"`
}

type metadataFile struct {
	Entries []fileEntry `koanf:"entry"`
}

// LoadFile parses a TOML metadata file made of [[entry]] tables.
func LoadFile(path string) ([]Entry, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, err
	}

	var f metadataFile
	if err := k.Unmarshal("", &f); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(f.Entries))
	for i, fe := range f.Entries {
		typ, err := ParseType(fe.Type)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if fe.ID == "" {
			return nil, fmt.Errorf("entry %d (%q): missing id", i, fe.Title)
		}
		e := Entry{
			ID:          fe.ID,
			MediaPath:   fe.MediaPath,
			Type:        typ,
			Title:       fe.Title,
			Summary:     fe.Summary,
			ReleaseDate: fe.ReleaseDate,
			Backdrop:    fe.Backdrop,
			ShowID:      fe.ShowID,
			Season:      fe.Season,
			Episode:     fe.Episode,
			Genres:      fe.Genres,
		}
		if fe.MediaID > 0 {
			id := fe.MediaID
			e.MediaID = &id
		}
		entries = append(entries, e)
	}
	return entries, nil
}
