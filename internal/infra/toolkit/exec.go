package toolkit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"credstamp/internal/config"
	"credstamp/internal/domain"
	"credstamp/internal/usecase"
)

// ExecAdapter shells out to a pinned content-credential verifier binary
// (c2patool-compatible) that emits a manifest store report as JSON on
// stdout. The binary owns container parsing, signature verification, and
// certificate validation.
type ExecAdapter struct {
	binPath string
	version string
	timeout time.Duration
}

func NewExecAdapterFromConfig(cfg config.Config) (*ExecAdapter, error) {
	if cfg.ToolkitBin == "" {
		return nil, errors.New("toolkit binary path is required")
	}
	if _, err := os.Stat(cfg.ToolkitBin); err != nil {
		return nil, fmt.Errorf("toolkit binary: %w", err)
	}
	return &ExecAdapter{
		binPath: cfg.ToolkitBin,
		version: cfg.ToolkitVersion,
		timeout: cfg.ToolkitTimeout(),
	}, nil
}

func (a *ExecAdapter) ReadAndVerify(ctx context.Context, asset usecase.Asset) (*domain.ToolkitResult, error) {
	if len(asset.Data) == 0 {
		return nil, domain.ErrAssetRequired
	}
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	tmp, err := writeTempAsset(asset)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp)

	cmd := exec.CommandContext(ctx, a.binPath, tmp, "--detailed")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		// The verifier exits non-zero when the asset carries no manifest
		// at all; that is absence, not failure.
		if isNoManifest(stderr.String()) {
			return &domain.ToolkitResult{}, nil
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("toolkit read failed: %s", firstLine(msg))
		}
		return nil, fmt.Errorf("toolkit read failed: %w", err)
	}

	return ParseReport(stdout.Bytes())
}

func writeTempAsset(asset usecase.Asset) (string, error) {
	ext := filepath.Ext(asset.Name)
	if ext == "" {
		ext = ".bin"
	}
	f, err := os.CreateTemp("", "credstamp-*"+ext)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(asset.Data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func isNoManifest(stderr string) bool {
	lowered := strings.ToLower(stderr)
	return strings.Contains(lowered, "no claim found") ||
		strings.Contains(lowered, "no manifest")
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return s
}
