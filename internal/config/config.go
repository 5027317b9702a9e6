package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultReorderQuiet   = time.Second
	defaultThumbnailWidth = 512
	defaultServerAddr     = "127.0.0.1:8484"
	defaultFFmpegPath     = "ffmpeg"
)

type Config struct {
	LibrarySources []string `koanf:"library_sources"` // paths to scan for media
	Database       string   `koanf:"database"`        // empty means xdg data dir
	Debug          bool     `koanf:"debug"`           // enables debug log lines
	LogFile        string   `koanf:"log_file"`        // empty means xdg state dir
	Icons          string   `koanf:"icons"`           // "nerd", "unicode" or "none" (default)

	// Quiet period before a drag gesture is committed to the playlist
	ReorderQuietMs int `koanf:"reorder_quiet_ms"`

	Thumbnails ThumbnailConfig `koanf:"thumbnails"`
	Server     ServerConfig    `koanf:"server"`
}

// ThumbnailConfig holds video thumbnail generation settings.
type ThumbnailConfig struct {
	FFmpegPath string `koanf:"ffmpeg_path"` // default: "ffmpeg" from PATH
	Width      int    `koanf:"width"`       // default: 512
	CacheDir   string `koanf:"cache_dir"`   // empty means xdg cache dir
}

// ServerConfig holds the HTTP suggestions endpoint settings.
type ServerConfig struct {
	Addr string `koanf:"addr"` // default: 127.0.0.1:8484
}

func Load() (*Config, error) {
	return LoadFrom(DefaultPaths()...)
}

// DefaultPaths returns the config files read by Load, lowest priority first.
func DefaultPaths() []string {
	return getConfigPaths()
}

// LoadFrom reads the given TOML files in order; later files override earlier
// ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	for i, src := range cfg.LibrarySources {
		cfg.LibrarySources[i] = expandPath(src)
	}
	cfg.Database = expandPath(cfg.Database)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.Thumbnails.CacheDir = expandPath(cfg.Thumbnails.CacheDir)
	cfg.Thumbnails.FFmpegPath = strings.TrimSpace(cfg.Thumbnails.FFmpegPath)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/reel/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "reel", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ReorderQuiet returns the drag commit quiet period, 1s unless configured.
func (c *Config) ReorderQuiet() time.Duration {
	if c.ReorderQuietMs <= 0 {
		return defaultReorderQuiet
	}
	return time.Duration(c.ReorderQuietMs) * time.Millisecond
}

// GetThumbnailConfig returns the thumbnail configuration with defaults applied.
func (c *Config) GetThumbnailConfig() ThumbnailConfig {
	cfg := c.Thumbnails
	if cfg.FFmpegPath == "" {
		cfg.FFmpegPath = defaultFFmpegPath
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultThumbnailWidth
	}
	return cfg
}

// ServerAddr returns the listen address for the HTTP endpoint.
func (c *Config) ServerAddr() string {
	if c.Server.Addr == "" {
		return defaultServerAddr
	}
	return c.Server.Addr
}
