package documents

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillmatrix-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes/:resumeId", h.serveResume)
	rg.GET("/local-resumes", h.listLocalResumes)
}

func (h *Handler) serveResume(c *gin.Context) {
	id := c.Param("resumeId")

	doc, err := h.Svc.GetResume(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume id", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to retrieve resume", nil)
		}
		return
	}

	disposition := "inline"
	if c.Query("download") == "true" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, doc.Filename))
	c.Header("Content-Length", strconv.Itoa(len(doc.Content)))
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}

func (h *Handler) listLocalResumes(c *gin.Context) {
	names, err := h.Svc.ListMirroredResumes(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}
	if len(names) == 0 {
		respond.Error(c, http.StatusNotFound, "not_found", "no resumes found", nil)
		return
	}

	files := make([]localResume, 0, len(names))
	for _, name := range names {
		files = append(files, localResume{
			Filename: name,
			Path:     "/uploads/resumes/" + name,
		})
	}
	respond.JSON(c, http.StatusOK, localResumesResponse{Resumes: files})
}
