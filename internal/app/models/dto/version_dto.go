package dto

import "time"

// VersionInfo reports application version and runtime details
type VersionInfo struct {
	Version          string    `json:"version" example:"1.0.0"`
	BuildDate        string    `json:"buildDate" example:"2025-08-01T12:00:00Z"`
	RuntimeVersion   string    `json:"runtimeVersion" example:"go1.23.0"`
	FrameworkVersion string    `json:"frameworkVersion" example:"gin v1.10.0"`
	Timestamp        time.Time `json:"timestamp"`
}
