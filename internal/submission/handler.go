package submission

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillmatrix-backend/internal/documents"
	"skillmatrix-backend/internal/shared/server/respond"
)

const maxUploadBytes = 32 << 20

var errUploadTooLarge = errors.New("file exceeds the upload size limit")

// Handler wires the submission endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the submission route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/submit", h.submit)
}

type submitResponse struct {
	Message string       `json:"message"`
	Results []PairResult `json:"results"`
}

func (h *Handler) submit(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid multipart form", nil)
		return
	}

	resumes, err := readUploads(form.File["resumes"])
	if err != nil {
		if errors.Is(err, errUploadTooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read resume files", nil)
		return
	}
	jobDescriptions, err := readUploads(form.File["job_description"])
	if err != nil {
		if errors.Is(err, errUploadTooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read job description files", nil)
		return
	}

	c.Set("resumeCount", len(resumes))
	c.Set("jobDescriptionCount", len(jobDescriptions))

	results, err := h.Svc.Submit(c.Request.Context(), resumes, jobDescriptions)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoResumes), errors.Is(err, ErrNoJobDescriptions):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, documents.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process files", nil)
		}
		return
	}

	c.Set("matchCount", len(results))
	if results == nil {
		results = []PairResult{}
	}
	respond.JSON(c, http.StatusOK, submitResponse{
		Message: "Files processed successfully",
		Results: results,
	})
}

func readUploads(headers []*multipart.FileHeader) ([]Upload, error) {
	uploads := make([]Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		// Read one byte past the limit so oversized files are rejected
		// whole rather than stored truncated.
		content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
		f.Close()
		if err != nil {
			return nil, err
		}
		if len(content) > maxUploadBytes {
			return nil, fmt.Errorf("%w: %s", errUploadTooLarge, fh.Filename)
		}
		uploads = append(uploads, Upload{Filename: fh.Filename, Content: content})
	}
	return uploads, nil
}
