package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentms/internal/app/services"
)

// VersionController reports application version information
type VersionController struct {
	versionService services.VersionService
}

// NewVersionController creates a new VersionController
func NewVersionController(versionService services.VersionService) *VersionController {
	return &VersionController{
		versionService: versionService,
	}
}

// GetVersion returns version and runtime information
// @Summary Get version info
// @Description Returns version, build date, runtime and framework versions
// @Tags version
// @Produce json
// @Success 200 {object} dto.VersionInfo "Version information"
// @Router /version [get]
func (c *VersionController) GetVersion(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.versionService.GetVersionInfo())
}
