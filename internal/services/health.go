package services

import (
	"fmt"

	"github.com/vojtechokenka/nokturo/internal/config"
	"github.com/vojtechokenka/nokturo/internal/utils"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Authorizer   string            `json:"authorizer"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

func (r *HealthCheckResult) fail(message string) {
	r.Status = "unhealthy"
	if r.ErrorMessage == "" {
		r.ErrorMessage = message
	} else {
		r.ErrorMessage += "; " + message
	}
}

// HealthCheck probes the database and the Authorizer service and reports
// per-dependency state. Status is "healthy" only when both respond.
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	checkDatabase(cfg, db, &result)
	checkAuthorizer(cfg, &result)

	return result
}

func checkDatabase(cfg *config.Config, db *gorm.DB, result *HealthCheckResult) {
	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		result.Database = "unreachable"
		result.Details["database_error"] = err.Error()
		result.fail(fmt.Sprintf("database ping failed: %v", err))
		return
	}

	result.Database = "ok"
	result.Details["database_type"] = cfg.DBType
	result.Details["database_name"] = cfg.DBDatabase
}

func checkAuthorizer(cfg *config.Config, result *HealthCheckResult) {
	if err := utils.PingAuthorizer(cfg.AuthzURL); err != nil {
		result.Authorizer = "unreachable"
		result.Details["authorizer_error"] = err.Error()
		result.fail(fmt.Sprintf("authorizer ping failed: %v", err))
		return
	}

	result.Authorizer = "ok"
	result.Details["authorizer_url"] = cfg.AuthzURL
}
