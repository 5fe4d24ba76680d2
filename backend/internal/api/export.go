package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docgraph/backend/internal/model"
)

func (h *Handler) exportDocument(c *gin.Context) {
	export, err := h.svc.Compose(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, export)
}

func (h *Handler) exportDocumentMetadata(c *gin.Context) {
	meta, err := h.svc.GetFileMetadata(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

func (h *Handler) exportSession(c *gin.Context) {
	session, err := h.svc.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) exportSessionStandard(c *gin.Context) {
	export, err := h.svc.SessionStandard(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, export)
}

func (h *Handler) exportUserEdits(c *gin.Context) {
	edits, err := h.svc.ExportUserEdits(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, edits)
}

func (h *Handler) exportAIEdits(c *gin.Context) {
	edits, err := h.svc.ExportAIEdits(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, edits)
}

// ingestData runs the decompose algorithm against one flat aggregate payload
func (h *Handler) ingestData(c *gin.Context) {
	var payload model.AggregatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	if err := h.svc.Decompose(c.Request.Context(), &payload); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": payload.ID, "status": "created"})
}

// health reports process liveness and backend connectivity; it never errors
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": h.pinger.Ping(c.Request.Context()),
	})
}
