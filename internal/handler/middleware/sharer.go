package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// SharerUserHeader carries the caller's user id. It is trusted as is.
const SharerUserHeader = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

var errInvalidSharerHeader = errs.BadRequest("invalid X-Sharer-User-Id header")

func RequireSharerUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := parseSharerUserID(c.GetHeader(SharerUserHeader))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, errInvalidSharerHeader.Error(), nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func parseSharerUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "parse sharer user id"), errInvalidSharerHeader)
	}
	if id <= 0 {
		return 0, errInvalidSharerHeader
	}
	return id, nil
}

func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	return id, ok
}
