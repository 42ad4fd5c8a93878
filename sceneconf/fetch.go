package sceneconf

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	getter "github.com/hashicorp/go-getter"
)

// Fetch makes the scene referenced by src available as a local file and returns its path.
//
// An existing local file is used as is. Everything else is treated as a go-getter
// source, e.g. "https://example.com/scene.yaml" or "git::https://github.com/user/repo//scene.yaml",
// and downloaded into cacheDir.
func Fetch(ctx context.Context, src string, cacheDir string) (string, error) {
	if stat, err := os.Stat(src); err == nil && !stat.IsDir() {
		return src, nil
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	hash := sha256.Sum256([]byte(src))
	dst := filepath.Join(cacheDir, hex.EncodeToString(hash[:8])+".yaml")

	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("fetch %q: %w", src, err)
	}

	slog.Debug("Start fetching scene", slog.String("src", src), slog.String("dst", dst))

	startTime := time.Now()

	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}

	if err := client.Get(); err != nil {
		slog.Warn("Failed to fetch scene",
			slog.String("src", src),
			slog.Duration("duration", time.Since(startTime)),
			slog.String("error", err.Error()))

		return "", fmt.Errorf("fetch %q: %w", src, err)
	}

	slog.Debug("Finish fetching scene",
		slog.String("src", src),
		slog.Duration("duration", time.Since(startTime)))

	return dst, nil
}
