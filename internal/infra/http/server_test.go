package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"credstamp/internal/config"
	"credstamp/internal/domain"
	"credstamp/internal/usecase"
)

var pngBytes = append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 32)...)

type staticToolkit struct {
	result *domain.ToolkitResult
	err    error
}

func (s *staticToolkit) ReadAndVerify(context.Context, usecase.Asset) (*domain.ToolkitResult, error) {
	return s.result, s.err
}

type staticFetcher struct {
	data map[string][]byte
}

func (s *staticFetcher) Fetch(_ context.Context, bucket, object string) ([]byte, error) {
	data, ok := s.data[bucket+"/"+object]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

func newTestServer(t *testing.T, deps ServerDeps) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewServerWithDeps(config.Config{HTTPAddr: ":0", MaxAssetBytes: 1 << 20}, deps)
}

func multipartBody(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestSubmitRealOutcome(t *testing.T) {
	server := newTestServer(t, ServerDeps{
		Toolkit: &staticToolkit{result: &domain.ToolkitResult{
			ActiveManifest: &domain.ActiveManifest{Title: "photo.png"},
		}},
	})

	body, contentType := multipartBody(t, "photo.png", pngBytes)
	req := httptest.NewRequest(http.MethodPost, "/v1/verifications", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	server.r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp submitResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SubmissionID == "" {
		t.Fatalf("expected submission id")
	}
	if resp.Outcome.State != string(domain.StateReal) {
		t.Fatalf("expected real outcome, got %s", resp.Outcome.State)
	}
	if resp.Outcome.Summary == nil || resp.Outcome.Summary.Producer != domain.UnknownProducer {
		t.Fatalf("expected summary with producer fallback, got %+v", resp.Outcome.Summary)
	}
}

func TestSubmitToolkitFailure(t *testing.T) {
	server := newTestServer(t, ServerDeps{
		Toolkit: &staticToolkit{err: errors.New("unsupported codec")},
	})

	body, contentType := multipartBody(t, "photo.png", pngBytes)
	req := httptest.NewRequest(http.MethodPost, "/v1/verifications", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	server.r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp submitResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Outcome.State != string(domain.StateNotVerifiable) {
		t.Fatalf("expected not_verifiable, got %s", resp.Outcome.State)
	}
	if resp.Outcome.Error != "unsupported codec" {
		t.Fatalf("expected cause message, got %q", resp.Outcome.Error)
	}
}

func TestSubmitRejectsNonImage(t *testing.T) {
	server := newTestServer(t, ServerDeps{Toolkit: &staticToolkit{result: &domain.ToolkitResult{}}})

	body, contentType := multipartBody(t, "notes.txt", []byte("plain text, no image here"))
	req := httptest.NewRequest(http.MethodPost, "/v1/verifications", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	server.r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Code != "UNSUPPORTED_ASSET" {
		t.Fatalf("expected UNSUPPORTED_ASSET, got %s", resp.Code)
	}
}

func TestSubmitMissingFile(t *testing.T) {
	server := newTestServer(t, ServerDeps{Toolkit: &staticToolkit{result: &domain.ToolkitResult{}}})

	req := httptest.NewRequest(http.MethodPost, "/v1/verifications", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSubmitByReference(t *testing.T) {
	server := newTestServer(t, ServerDeps{
		Toolkit: &staticToolkit{result: &domain.ToolkitResult{
			ActiveManifest: &domain.ActiveManifest{Title: "stored.png"},
		}},
		Assets: &staticFetcher{data: map[string][]byte{"uploads/stored.png": pngBytes}},
	})

	payload, _ := json.Marshal(submitReference{Bucket: "uploads", Object: "stored.png"})
	req := httptest.NewRequest(http.MethodPost, "/v1/verifications", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp submitResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Outcome.State != string(domain.StateReal) {
		t.Fatalf("expected real outcome, got %s", resp.Outcome.State)
	}
}

func TestCurrentOutcomeLifecycle(t *testing.T) {
	server := newTestServer(t, ServerDeps{
		Toolkit: &staticToolkit{result: &domain.ToolkitResult{
			ActiveManifest:   &domain.ActiveManifest{Title: "photo.png"},
			ValidationStatus: []domain.ValidationStatus{{Code: "claimSignature.mismatch"}},
		}},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/verifications/current", nil)
	w := httptest.NewRecorder()
	server.r.ServeHTTP(w, req)
	var current outcomeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &current); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if current.State != string(domain.StateIdle) {
		t.Fatalf("expected idle before any submission, got %s", current.State)
	}

	body, contentType := multipartBody(t, "photo.png", pngBytes)
	submit := httptest.NewRequest(http.MethodPost, "/v1/verifications", body)
	submit.Header.Set("Content-Type", contentType)
	server.r.ServeHTTP(httptest.NewRecorder(), submit)

	req = httptest.NewRequest(http.MethodGet, "/v1/verifications/current", nil)
	w = httptest.NewRecorder()
	server.r.ServeHTTP(w, req)
	if err := json.Unmarshal(w.Body.Bytes(), &current); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if current.State != string(domain.StateUntrusted) {
		t.Fatalf("expected untrusted after submission, got %s", current.State)
	}
}
