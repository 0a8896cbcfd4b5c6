package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName, version string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	info := BuildInfo{
		Version:     version,
		GitCommit:   "unknown",
		BuildTime:   "unknown",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		info.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		info.BuildTime = buildTime
	}

	return func(c echo.Context) error {
		resp := info
		resp.ServerTime = time.Now()
		return c.JSON(http.StatusOK, resp)
	}
}

// Checker checks one dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckFunc adapts a function to Checker
type CheckFunc func(ctx context.Context) error

func (f CheckFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

// Service runs the registered dependency checks
type Service struct {
	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewService creates an empty health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a checker for a dependency
func (s *Service) AddChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Report is the readiness response body
type Report struct {
	Status       string           `json:"status"`
	Service      string           `json:"service"`
	Timestamp    time.Time        `json:"timestamp"`
	Dependencies []DependencyInfo `json:"dependencies"`
}

// Check runs every checker and aggregates the result
func (s *Service) Check(ctx context.Context) Report {
	s.mu.RLock()
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	checkers := make(map[string]Checker, len(s.checkers))
	for k, v := range s.checkers {
		checkers[k] = v
	}
	s.mu.RUnlock()
	sort.Strings(names)

	report := Report{Status: "ready", Timestamp: time.Now(), Dependencies: make([]DependencyInfo, 0, len(names))}
	for _, name := range names {
		dep := DependencyInfo{Name: name, Status: "healthy"}
		if err := checkers[name].CheckHealth(ctx); err != nil {
			logger.Warn("Health check failed", logger.String("dependency", name), logger.ErrorField(err))
			dep.Status = "unhealthy"
			dep.Error = err.Error()
			report.Status = "unavailable"
		}
		report.Dependencies = append(report.Dependencies, dep)
	}
	return report
}

// RegisterHealthEndpoints registers the ping, liveness and readiness endpoints.
// svc may be nil, in which case /ready always reports ready.
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	e.GET("/ping", NewPingHandler(serviceName, version))

	ok := func(c echo.Context) error { return c.String(http.StatusOK, "OK") }
	e.GET("/health", ok)
	e.GET("/healthz", ok)

	e.GET("/ready", func(c echo.Context) error {
		if svc == nil {
			return ok(c)
		}
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		report := svc.Check(ctx)
		report.Service = serviceName
		status := http.StatusOK
		if report.Status != "ready" {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, report)
	})
}
