package handlers

import (
	"net/http"
	"time"

	"github.com/aksagenset/invoquot/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// registerHomeRoutes registers the connectivity check route.
func registerHomeRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	rg.GET("/test", testConnectivity(cfg))
}

// testConnectivity godoc
// @Summary API connectivity check
// @Description Confirms the API is reachable and reports the issuing company identity
// @Tags home
// @Produce  json
// @Success 200 {object} map[string]interface{}
// @Router /test [get]
func testConnectivity(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "InvoQuot API is working!",
			"company":   cfg.Company.Name,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
