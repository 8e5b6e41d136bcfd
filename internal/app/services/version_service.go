package services

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentms/internal/app/models/dto"
)

// Build information, overridable at link time:
//
//	go build -ldflags "-X .../services.Version=1.2.0 -X .../services.BuildDate=..."
var (
	Version   = "1.0.0"
	BuildDate = "unknown"
)

// VersionService reports application version and runtime information
type VersionService interface {
	GetVersionInfo() *dto.VersionInfo
}

type versionService struct{}

// NewVersionService creates a new version service instance
func NewVersionService() VersionService {
	return &versionService{}
}

// GetVersionInfo returns version, build and runtime details
func (v *versionService) GetVersionInfo() *dto.VersionInfo {
	return &dto.VersionInfo{
		Version:          Version,
		BuildDate:        BuildDate,
		RuntimeVersion:   runtime.Version(),
		FrameworkVersion: "gin " + gin.Version,
		Timestamp:        time.Now(),
	}
}
