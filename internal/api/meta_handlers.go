package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/india-resources/directory-api/internal/service"
)

// StatesHandler returns the fixed list of states and union territories for
// presentation-layer form selects.
func StatesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": service.IndianStates})
	}
}

// IconsHandler returns the fixed list of renderable icon names.
func IconsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": service.AvailableIcons})
	}
}
