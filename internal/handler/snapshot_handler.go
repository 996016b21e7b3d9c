package handler

import (
	"context"
	"net/http"

	"github.com/emre57yilmaz/finans-bot/internal/model"

	"github.com/gin-gonic/gin"
)

type SnapshotBuilder interface {
	Build(ctx context.Context) model.Snapshot
}

type SnapshotHandler struct {
	builder SnapshotBuilder
}

func NewSnapshotHandler(builder SnapshotBuilder) *SnapshotHandler {
	return &SnapshotHandler{builder: builder}
}

// GetFullData always answers 200: upstream degradation has already been
// absorbed into best-effort snapshot fields by the builder.
func (h *SnapshotHandler) GetFullData(c *gin.Context) {
	snap := h.builder.Build(c.Request.Context())
	c.JSON(http.StatusOK, NewSnapshotResponse(snap))
}

func (h *SnapshotHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
