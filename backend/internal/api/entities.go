package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docgraph/backend/internal/model"
)

func (h *Handler) createUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		bindError(c, err)
		return
	}
	if err := h.svc.CreateUser(c.Request.Context(), &user); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) getUser(c *gin.Context) {
	user, err := h.svc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) listUsers(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	users, err := h.svc.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) createFolder(c *gin.Context) {
	var folder model.Folder
	if err := c.ShouldBindJSON(&folder); err != nil {
		bindError(c, err)
		return
	}
	if err := h.svc.CreateFolder(c.Request.Context(), &folder); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, folder)
}

func (h *Handler) getFolder(c *gin.Context) {
	folder, err := h.svc.GetFolder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, folder)
}

func (h *Handler) listFolders(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	folders, err := h.svc.ListFolders(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, folders)
}

func (h *Handler) createSession(c *gin.Context) {
	var session model.Session
	if err := c.ShouldBindJSON(&session); err != nil {
		bindError(c, err)
		return
	}
	if err := h.svc.CreateSession(c.Request.Context(), &session); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *Handler) getSession(c *gin.Context) {
	session, err := h.svc.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) listSessions(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	sessions, err := h.svc.ListSessions(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *Handler) createClassifier(c *gin.Context) {
	var classifier model.Classifier
	if err := c.ShouldBindJSON(&classifier); err != nil {
		bindError(c, err)
		return
	}
	if err := h.svc.CreateClassifier(c.Request.Context(), &classifier); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, classifier)
}

func (h *Handler) getClassifier(c *gin.Context) {
	classifier, err := h.svc.GetClassifier(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, classifier)
}

func (h *Handler) listClassifiers(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	classifiers, err := h.svc.ListClassifiers(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, classifiers)
}

func (h *Handler) createClassifierData(c *gin.Context) {
	var data model.ClassifierData
	if err := c.ShouldBindJSON(&data); err != nil {
		bindError(c, err)
		return
	}
	if err := h.svc.CreateClassifierData(c.Request.Context(), &data); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, data)
}

func (h *Handler) listClassifierData(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	rows, err := h.svc.ListClassifierData(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) createEnricher(c *gin.Context) {
	var enricher model.Enricher
	if err := c.ShouldBindJSON(&enricher); err != nil {
		bindError(c, err)
		return
	}
	if err := h.svc.CreateEnricher(c.Request.Context(), &enricher); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, enricher)
}

func (h *Handler) getEnricher(c *gin.Context) {
	enricher, err := h.svc.GetEnricher(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enricher)
}

func (h *Handler) listEnrichers(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	enrichers, err := h.svc.ListEnrichers(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrichers)
}

func (h *Handler) createBGSClassification(c *gin.Context) {
	var bgs model.BGSClassification
	if err := c.ShouldBindJSON(&bgs); err != nil {
		bindError(c, err)
		return
	}
	if err := h.svc.CreateBGSClassification(c.Request.Context(), &bgs); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bgs)
}

func (h *Handler) getBGSClassification(c *gin.Context) {
	bgs, err := h.svc.GetBGSClassification(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bgs)
}

func (h *Handler) listBGSClassifications(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	items, err := h.svc.ListBGSClassifications(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) createUserEdit(c *gin.Context) {
	var edit model.UserEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		bindError(c, err)
		return
	}
	if err := h.svc.CreateUserEdit(c.Request.Context(), &edit); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, edit)
}

func (h *Handler) listUserEdits(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	edits, err := h.svc.ListUserEdits(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, edits)
}
