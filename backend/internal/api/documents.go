package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docgraph/backend/internal/model"
)

func (h *Handler) createDocument(c *gin.Context) {
	var doc model.DocumentCreate
	if err := c.ShouldBindJSON(&doc); err != nil {
		bindError(c, err)
		return
	}
	if err := h.svc.CreateDocument(c.Request.Context(), &doc); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *Handler) getDocument(c *gin.Context) {
	doc, err := h.svc.GetDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *Handler) listDocuments(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	docs, err := h.svc.ListDocuments(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *Handler) updateDocument(c *gin.Context) {
	var update model.DocumentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		bindError(c, err)
		return
	}
	id := c.Param("id")
	if err := h.svc.UpdateDocument(c.Request.Context(), id, &update); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "updated"})
}

func (h *Handler) deleteDocument(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.DeleteDocument(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "deleted"})
}

func (h *Handler) createFileMetadata(c *gin.Context) {
	var meta model.FileMetadata
	if err := c.ShouldBindJSON(&meta); err != nil {
		bindError(c, err)
		return
	}
	if err := h.svc.CreateFileMetadata(c.Request.Context(), &meta); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meta)
}

func (h *Handler) getFileMetadata(c *gin.Context) {
	meta, err := h.svc.GetFileMetadata(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

func (h *Handler) listFileMetadata(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	items, err := h.svc.ListFileMetadata(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) createVersion(c *gin.Context) {
	var version model.Version
	if err := c.ShouldBindJSON(&version); err != nil {
		bindError(c, err)
		return
	}
	if err := h.svc.CreateVersion(c.Request.Context(), &version); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, version)
}

func (h *Handler) getVersion(c *gin.Context) {
	version, err := h.svc.GetVersion(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, version)
}

func (h *Handler) listVersions(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	versions, err := h.svc.ListVersions(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, versions)
}
