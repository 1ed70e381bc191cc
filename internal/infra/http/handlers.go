package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"credstamp/internal/domain"
	"credstamp/internal/usecase"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type submitReference struct {
	Bucket string `json:"bucket"`
	Object string `json:"object"`
}

type outcomeResponse struct {
	State   string                  `json:"state"`
	Summary *domain.ManifestSummary `json:"summary,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

type submitResponse struct {
	SubmissionID string          `json:"submission_id"`
	Outcome      outcomeResponse `json:"outcome"`
}

func (s *Server) handleSubmit(c *gin.Context) {
	if !s.enforceRateLimit(c) {
		return
	}

	asset, err := s.readAsset(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if int64(len(asset.Data)) > s.cfg.MaxAssetBytes && s.cfg.MaxAssetBytes > 0 {
		writeError(c, domain.ErrAssetTooLarge)
		return
	}

	detected := mimetype.Detect(asset.Data)
	if !strings.HasPrefix(detected.String(), "image/") {
		writeError(c, domain.ErrUnsupportedAsset)
		return
	}
	if asset.MediaType == "" {
		asset.MediaType = detected.String()
	}

	outcome := s.verifyUC.Execute(c.Request.Context(), asset)
	c.JSON(http.StatusOK, submitResponse{
		SubmissionID: uuid.NewString(),
		Outcome:      outcomeToResponse(outcome),
	})
}

func (s *Server) handleCurrent(c *gin.Context) {
	c.JSON(http.StatusOK, outcomeToResponse(s.state.Current()))
}

// readAsset accepts either a multipart upload ("file" part) or a JSON
// object-store reference resolved through the configured fetcher.
func (s *Server) readAsset(c *gin.Context) (usecase.Asset, error) {
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/") {
		header, err := c.FormFile("file")
		if err != nil {
			return usecase.Asset{}, domain.ErrAssetRequired
		}
		f, err := header.Open()
		if err != nil {
			return usecase.Asset{}, err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return usecase.Asset{}, err
		}
		return usecase.Asset{
			Name:      header.Filename,
			MediaType: header.Header.Get("Content-Type"),
			Data:      data,
		}, nil
	}

	var ref submitReference
	if err := c.ShouldBindJSON(&ref); err != nil || ref.Bucket == "" || ref.Object == "" {
		return usecase.Asset{}, domain.ErrAssetRequired
	}
	if s.assets == nil {
		return usecase.Asset{}, domain.ErrNotFound
	}
	data, err := s.assets.Fetch(c.Request.Context(), ref.Bucket, ref.Object)
	if err != nil {
		return usecase.Asset{}, err
	}
	return usecase.Asset{Name: ref.Object, Data: data}, nil
}

func outcomeToResponse(outcome domain.Outcome) outcomeResponse {
	return outcomeResponse{
		State:   string(outcome.State),
		Summary: outcome.Summary,
		Error:   outcome.Error,
	}
}

func writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrAssetRequired):
		status, code = http.StatusBadRequest, "ASSET_REQUIRED"
	case errors.Is(err, domain.ErrUnsupportedAsset):
		status, code = http.StatusBadRequest, "UNSUPPORTED_ASSET"
	case errors.Is(err, domain.ErrAssetTooLarge):
		status, code = http.StatusRequestEntityTooLarge, "ASSET_TOO_LARGE"
	case errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	}
	writeErrorCode(c, status, code, err.Error())
}

func writeErrorCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorResponse{
		Code:    code,
		Message: message,
	})
}
