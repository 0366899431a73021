package adminsrv

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danmuck/meshghost/internal/logging"
	"github.com/danmuck/meshghost/internal/observability"
	"github.com/danmuck/meshghost/internal/snap"
)

// Server is one part's admin HTTP surface.
type Server struct {
	PartID  string
	Addr    string
	started time.Time
	router  *gin.Engine

	mu          sync.Mutex
	planSummary map[int]int
	snapReport  snap.Report
}

// New builds a Server for partID, listening on addr once Serve is called.
func New(partID, addr string, corsOrigins []string) *Server {
	observability.RegisterMetrics()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(logging.Logger()))
	r.Use(observability.RequestMetricsMiddleware(partID))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(corsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	return &Server{
		PartID:  partID,
		Addr:    addr,
		started: time.Now(),
		router:  r,
	}
}

// SetGhostSummary records the latest ghost.Plan.Summary for /ghost/plan.
func (s *Server) SetGhostSummary(summary map[int]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.planSummary = summary
}

// SetSnapReport records the latest snap.Driver.Run report for /snap/report.
func (s *Server) SetSnapReport(report snap.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapReport = report
}

// RegisterRoutes wires every admin endpoint onto the router. Safe to call
// more than once only if the caller also discards the previous router.
func (s *Server) RegisterRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"part":   s.PartID,
			"uptime": time.Since(s.started).String(),
		})
	})

	s.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":  true,
			"part":   s.PartID,
			"uptime": time.Since(s.started).String(),
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/ghost/plan", func(c *gin.Context) {
		s.mu.Lock()
		summary := s.planSummary
		s.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"part": s.PartID, "plan": summary})
	})

	s.router.GET("/snap/report", func(c *gin.Context) {
		s.mu.Lock()
		report := s.snapReport
		s.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{
			"part":    s.PartID,
			"snapped": report.Snapped,
			"targets": report.Targets,
		})
	})
}

// Serve registers routes and blocks serving HTTP on Addr.
func (s *Server) Serve() error {
	s.RegisterRoutes()
	return s.router.Run(s.Addr)
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
