package thumbnail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // ffmpeg frames are piped as PNG
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/nfnt/resize"

	"github.com/llehouerou/reel/internal/config"
	"github.com/llehouerou/reel/internal/library"
)

const (
	frameOffset     = 10 * time.Second
	generateTimeout = 30 * time.Second
	jpegQuality     = 85
)

var ErrFFmpegNotFound = errors.New("ffmpeg not found")

// FFmpegGenerator extracts a frame from a video with ffmpeg and stores it as
// a resized JPEG in the cache directory.
type FFmpegGenerator struct {
	ffmpegPath string
	width      int
	cacheDir   string
}

// NewFFmpegGenerator creates a generator from configuration. The cache
// directory defaults to $XDG_CACHE_HOME/reel/thumbnails.
func NewFFmpegGenerator(cfg config.ThumbnailConfig) (*FFmpegGenerator, error) {
	dir := cfg.CacheDir
	if dir == "" {
		marker, err := xdg.CacheFile(filepath.Join("reel", "thumbnails", ".keep"))
		if err != nil {
			return nil, err
		}
		dir = filepath.Dir(marker)
	}
	return &FFmpegGenerator{
		ffmpegPath: cfg.FFmpegPath,
		width:      cfg.Width,
		cacheDir:   dir,
	}, nil
}

// Generate implements Generator.
func (g *FFmpegGenerator) Generate(ctx context.Context, m *library.Media) (string, error) {
	if _, err := exec.LookPath(g.ffmpegPath); err != nil {
		return "", fmt.Errorf("%w: %s", ErrFFmpegNotFound, g.ffmpegPath)
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	args := []string{
		"-v", "error",
		"-ss", strconv.FormatFloat(seekOffset(m.Length).Seconds(), 'f', 3, 64),
		"-i", m.Path,
		"-frames:v", "1",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-",
	}
	cmd := exec.CommandContext(ctx, g.ffmpegPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg %s: %w: %s", m.Path, err, stderr.String())
	}

	img, _, err := image.Decode(&stdout)
	if err != nil {
		return "", fmt.Errorf("decode frame: %w", err)
	}

	dst := filepath.Join(g.cacheDir, strconv.FormatInt(m.ID, 10)+".jpg")
	if err := writeJPEG(img, g.width, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// seekOffset picks the frame position: 10s in, or a tenth of short videos.
func seekOffset(length time.Duration) time.Duration {
	if length > 0 && length < 10*frameOffset {
		return length / 10
	}
	return frameOffset
}

// writeJPEG resizes img to width (keeping the aspect ratio) and writes it.
func writeJPEG(img image.Image, width int, dst string) error {
	if width > 0 && img.Bounds().Dx() > width {
		img = resize.Resize(uint(width), 0, img, resize.Lanczos3)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		f.Close()
		os.Remove(dst)
		return err
	}
	return f.Close()
}
