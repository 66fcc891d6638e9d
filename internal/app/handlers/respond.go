package handlers

import (
	"errors"
	"net/http"

	"github.com/Laminito/ameublement-market/internal/pkg/backend"

	"github.com/gin-gonic/gin"
)

// respondWithBackendError forwards a backend rejection with its status
// when one exists, and falls back to 502 for transport failures.
// notFoundMessage replaces the backend's own wording on 404 so the
// shopper sees French.
func respondWithBackendError(c *gin.Context, err error, notFoundMessage string) {
	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "service momentanément indisponible"})
		return
	}

	message := apiErr.Message
	if apiErr.StatusCode == http.StatusNotFound {
		message = notFoundMessage
	}

	body := gin.H{"success": false, "message": message}
	if len(apiErr.Fields) > 0 {
		body["errors"] = apiErr.Fields
	}
	c.JSON(apiErr.StatusCode, body)
}
