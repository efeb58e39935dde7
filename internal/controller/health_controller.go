package controller

import (
	"learnsphere_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// HealthCheck godoc
// @Summary Liveness probe
// @Description Fixed healthy payload. Returns 200 whenever the process is serving requests; the database is not consulted.
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{"status": "healthy"})
}
