package adminsrv

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/danmuck/meshghost/internal/snap"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	s := New("part-0", ":0", nil)
	s.RegisterRoutes()
	return s
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
}

func TestGhostPlanEndpointReflectsLastSummary(t *testing.T) {
	s := newTestServer()
	s.SetGhostSummary(map[int]int{0: 3, 1: 1})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ghost/plan", nil)
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"part-0"`) {
		t.Fatalf("expected body to mention part id, got %s", body)
	}
	if !strings.Contains(body, `"0":3`) || !strings.Contains(body, `"1":1`) {
		t.Fatalf("expected body to carry the recorded summary {0:3,1:1}, got %s", body)
	}
}

func TestSnapReportEndpoint(t *testing.T) {
	s := newTestServer()
	s.SetSnapReport(snap.Report{Snapped: 4, Targets: 5})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/snap/report", nil)
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
}
