package youtube

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ErrNoAudio is returned when yt-dlp finishes without producing a file
var ErrNoAudio = errors.New("no audio file downloaded")

// AudioFile is a downloaded media file inside its own temporary directory
type AudioFile struct {
	Path string
	Dir  string
}

// Cleanup removes the temporary directory and everything in it
func (a *AudioFile) Cleanup() error {
	if a == nil || a.Dir == "" {
		return nil
	}
	return os.RemoveAll(a.Dir)
}

// AudioRetriever downloads the smallest mp4 rendition of a video with yt-dlp
type AudioRetriever struct {
	runner  runner
	tempDir string
	logger  *zap.Logger
}

// NewAudioRetriever creates a retriever. An empty tempDir uses os.TempDir().
func NewAudioRetriever(binary, tempDir string, logger *zap.Logger) *AudioRetriever {
	return &AudioRetriever{
		runner:  newRunner(binary),
		tempDir: tempDir,
		logger:  logger,
	}
}

// DownloadAudio saves the video's media into a fresh temporary directory.
// The caller owns the returned file and must call Cleanup.
func (r *AudioRetriever) DownloadAudio(ctx context.Context, link string) (*AudioFile, error) {
	if _, ok := ExtractVideoID(link); !ok {
		return nil, ErrInvalidLink
	}

	dir, err := os.MkdirTemp(r.tempDir, "tubeblog-audio-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	audio, err := r.download(ctx, link, dir)
	if err != nil {
		if rmErr := os.RemoveAll(dir); rmErr != nil && r.logger != nil {
			r.logger.Warn("Failed to remove temp dir", zap.String("dir", dir), zap.Error(rmErr))
		}
		return nil, err
	}
	return audio, nil
}

func (r *AudioRetriever) download(ctx context.Context, link, dir string) (*AudioFile, error) {
	output := filepath.Join(dir, "%(id)s.%(ext)s")
	if _, err := r.runner.run(ctx,
		"-f", "worst[ext=mp4]",
		"--no-playlist",
		"--quiet",
		"--no-warnings",
		"-o", output,
		link,
	); err != nil {
		return nil, fmt.Errorf("download audio: %w", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		return nil, err
	}
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() || info.Size() == 0 {
			continue
		}
		if r.logger != nil {
			r.logger.Info("🎧 Audio downloaded",
				zap.String("file", filepath.Base(m)),
				zap.Int64("bytes", info.Size()),
			)
		}
		return &AudioFile{Path: m, Dir: dir}, nil
	}
	return nil, ErrNoAudio
}
