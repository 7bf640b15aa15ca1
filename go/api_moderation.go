package delibroserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	markethttpmapper "github.com/delibro/delibro/internal/domains/marketplace/adapters/http/mapper"
	marketports "github.com/delibro/delibro/internal/domains/marketplace/ports"
)

// ModerationAPI wires HTTP transport with the moderation report.
type ModerationAPI struct {
	service marketports.Service
}

// NewModerationAPI creates a ModerationAPI backed by the provided service.
func NewModerationAPI(service marketports.Service) ModerationAPI {
	return ModerationAPI{service: service}
}

// Get /v1/moderation
// List flagged products and orders pending review
func (api *ModerationAPI) ListFlags(c *gin.Context) {
	flags, err := api.service.ModerationFlags(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, markethttpmapper.FromModerationFlags(flags))
}
