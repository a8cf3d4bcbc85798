package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ReadinessState string

const (
	ReadinessStateReady    ReadinessState = "ready"
	ReadinessStateNotReady ReadinessState = "not_ready"
	ReadinessStateOptional ReadinessState = "optional"
)

type ReadinessIssue struct {
	ID         string            `json:"id"`
	Status     ReadinessState    `json:"status"`
	ActionHref string            `json:"action_href"`
	Evidence   map[string]string `json:"evidence,omitempty"`
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness reports whether the instance can serve quotes: the database must
// answer and the catalog must hold at least one room type. An empty catalog
// is not an error condition, but a fresh deployment routing traffic to it
// would 404 every quote, so it surfaces as an issue.
func (s *Server) Readiness(c *gin.Context) {
	ctx := c.Request.Context()

	issues := make([]ReadinessIssue, 0, 2)
	isReady := true

	sqlDB, err := s.db.WithContext(ctx).DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		isReady = false
		issues = append(issues, ReadinessIssue{
			ID:         "database_reachable",
			Status:     ReadinessStateNotReady,
			ActionHref: "",
			Evidence:   map[string]string{"error": err.Error()},
		})
	} else {
		issues = append(issues, ReadinessIssue{
			ID:         "database_reachable",
			Status:     ReadinessStateReady,
			ActionHref: "",
		})
	}

	if isReady {
		var roomTypes int64
		if err := s.db.WithContext(ctx).Table("room_types").Count(&roomTypes).Error; err != nil {
			isReady = false
			issues = append(issues, ReadinessIssue{
				ID:         "catalog_populated",
				Status:     ReadinessStateNotReady,
				ActionHref: "/api/room-types",
				Evidence:   map[string]string{"error": err.Error()},
			})
		} else if roomTypes == 0 {
			issues = append(issues, ReadinessIssue{
				ID:         "catalog_populated",
				Status:     ReadinessStateOptional,
				ActionHref: "/api/room-types",
				Evidence:   map[string]string{"room_types": "0"},
			})
		} else {
			issues = append(issues, ReadinessIssue{
				ID:         "catalog_populated",
				Status:     ReadinessStateReady,
				ActionHref: "/api/room-types",
				Evidence:   map[string]string{"room_types": fmt.Sprintf("%d", roomTypes)},
			})
		}
	}

	status := http.StatusOK
	state := ReadinessStateReady
	if !isReady {
		status = http.StatusServiceUnavailable
		state = ReadinessStateNotReady
	}

	c.JSON(status, gin.H{
		"ready":        isReady,
		"system_state": state,
		"issues":       issues,
	})
}

// Metrics serves both the service registry and the default gatherer; the
// gorm prometheus plugin registers its collectors on the default registry.
func (s *Server) Metrics(c *gin.Context) {
	gatherers := prometheus.Gatherers{s.registry, prometheus.DefaultGatherer}
	promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{}).ServeHTTP(c.Writer, c.Request)
}
