package toolkit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"credstamp/internal/config"
	"credstamp/internal/domain"
	"credstamp/internal/usecase"
)

// RemoteAdapter talks to a hosted verification service that exposes the
// toolkit over HTTP. Version pinning and verification asset locations are
// the service's deployment concern; this adapter only posts bytes and
// decodes the normalized result.
type RemoteAdapter struct {
	baseURL string
	client  *http.Client
}

func NewRemoteAdapterFromConfig(cfg config.Config) (*RemoteAdapter, error) {
	if cfg.ToolkitURL == "" {
		return nil, errors.New("toolkit url is required")
	}
	timeout := cfg.ToolkitTimeout()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RemoteAdapter{
		baseURL: strings.TrimRight(cfg.ToolkitURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (a *RemoteAdapter) ReadAndVerify(ctx context.Context, asset usecase.Asset) (*domain.ToolkitResult, error) {
	if len(asset.Data) == 0 {
		return nil, domain.ErrAssetRequired
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/read", bytes.NewReader(asset.Data))
	if err != nil {
		return nil, err
	}
	if asset.MediaType != "" {
		req.Header.Set("Content-Type", asset.MediaType)
	}
	if asset.Name != "" {
		req.Header.Set("X-Asset-Name", asset.Name)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("toolkit request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("toolkit read failed: %s", firstLine(msg))
	}

	var result domain.ToolkitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode toolkit response: %w", err)
	}
	return &result, nil
}
