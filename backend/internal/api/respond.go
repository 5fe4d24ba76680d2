package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"docgraph/backend/pkg/apperr"
)

// respondError maps a repository failure onto a client-visible status and a
// structured detail body. Unknown failures become 500s without leaking
// internals.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"detail": appMessage(err)})
	case apperr.KindDuplicateKey, apperr.KindInvalidArgument, apperr.KindReferentialPrecondition:
		c.JSON(http.StatusBadRequest, gin.H{"detail": appMessage(err)})
	case apperr.KindStoreUnavailable:
		h.logger.Error("Graph store unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "graph store unavailable"})
	default:
		h.logger.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}

func appMessage(err error) string {
	var e *apperr.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// pagination reads limit/offset query params with the documented defaults.
// Range validation happens in the repository.
func pagination(c *gin.Context) (int, int, bool) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "limit must be an integer"})
		return 0, 0, false
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "offset must be an integer"})
		return 0, 0, false
	}
	return limit, offset, true
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
}
