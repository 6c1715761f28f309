package matches

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillmatrix-backend/internal/shared/server/respond"
)

// Handler serves read-only match record routes.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches match routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/candidate-filtering", h.list)
}

// list returns all match records newest-first with document metadata
// joined in. Clients that also subscribe to the live event stream must
// reconcile the two feeds by (resumeId, jobDescriptionId).
func (h *Handler) list(c *gin.Context) {
	records, err := h.Repo.ListWithDocuments(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch candidate filtering data", nil)
		return
	}
	if records == nil {
		records = []RecordWithDocuments{}
	}
	respond.JSON(c, http.StatusOK, records)
}
