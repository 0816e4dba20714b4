package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avtanos/vetcard/internal/dto"
	"github.com/avtanos/vetcard/internal/middleware"
	"github.com/avtanos/vetcard/internal/response"
	"github.com/avtanos/vetcard/internal/storage"
)

// requireUserID pulls the authenticated user ID from the context.
// The auth middleware guarantees it is present on protected routes.
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	return userID, true
}

// parseIDParam parses a UUID path parameter. Malformed IDs behave like
// missing resources.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Resource not found")
		return uuid.Nil, false
	}
	return id, true
}

// urlResolver builds a URL resolver that turns storage keys into absolute
// URLs. Relative URLs from the storage backend (the local media prefix)
// are made absolute against the request origin.
func urlResolver(c *gin.Context, store storage.Storage) dto.URLResolver {
	return func(key string) string {
		url := store.URL(key)
		if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
			return url
		}
		return requestOrigin(c) + url
	}
}

// requestOrigin reconstructs the scheme and host of the current request
func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
