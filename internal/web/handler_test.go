package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enrollment/internal/config"
	"enrollment/internal/httpmiddleware"
	"enrollment/internal/registry"
	"enrollment/internal/report"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<!DOCTYPE html><title>Registration</title>"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "static"), 0o755))

	cfg := config.App{Env: "prod", StaticDir: dir, RateLimitPerMin: 1000}
	svc := registry.NewService(registry.NewStore())
	h := NewHandler(svc, report.New())
	limiter := httpmiddleware.NewTokenBucket(1000, 1000)
	return Router(cfg, h, limiter, nil)
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

const validStudentBody = `{"role":"student","fullName":"Jordan Lee","email":"jordan@school.edu","gradeLevel":"10","studentId":"STU-2045"}`
const validTeacherBody = `{"role":"teacher","fullName":"Sam Rivera","email":"sam@school.edu","subject":"Physics","employeeId":"EMP-114"}`

func TestSubmitRegistration(t *testing.T) {
	r := newTestRouter(t)

	rr := postJSON(r, "/v1/registrations", validStudentBody)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp struct {
		Registration map[string]string `json:"registration"`
		Summary      registry.Summary  `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Registration["id"])
	assert.Equal(t, "student", resp.Registration["role"])
	assert.Equal(t, "10", resp.Registration["gradeLevel"])
	assert.Equal(t, "STU-2045", resp.Registration["studentId"])
	assert.Equal(t, registry.Summary{Total: 1, Students: 1}, resp.Summary)
}

func TestSubmitRejectsBadEmail(t *testing.T) {
	r := newTestRouter(t)

	body := strings.Replace(validStudentBody, "jordan@school.edu", "not-an-email", 1)
	rr := postJSON(r, "/v1/registrations", body)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "email")

	// list untouched
	rr = get(r, "/v1/summary")
	var sum registry.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sum))
	assert.Zero(t, sum.Total)
}

func TestSubmitRejectsTeacherWithoutPair(t *testing.T) {
	r := newTestRouter(t)

	rr := postJSON(r, "/v1/registrations", `{"role":"teacher","fullName":"Sam Rivera","email":"sam@school.edu","gradeLevel":"10","studentId":"STU-1"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "subject")
	assert.Contains(t, resp.Errors, "employeeId")
}

func TestSubmitRejectsMalformedBody(t *testing.T) {
	r := newTestRouter(t)
	rr := postJSON(r, "/v1/registrations", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListNewestFirst(t *testing.T) {
	r := newTestRouter(t)

	require.Equal(t, http.StatusCreated, postJSON(r, "/v1/registrations", validStudentBody).Code)
	require.Equal(t, http.StatusCreated, postJSON(r, "/v1/registrations", validTeacherBody).Code)

	rr := get(r, "/v1/registrations")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Registrations []map[string]string `json:"registrations"`
		Summary       registry.Summary    `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Registrations, 2)
	assert.Equal(t, "Sam Rivera", resp.Registrations[0]["fullName"])
	assert.Equal(t, "Jordan Lee", resp.Registrations[1]["fullName"])
	assert.Equal(t, registry.Summary{Total: 2, Students: 1, Teachers: 1}, resp.Summary)
}

func TestSummaryAddsUp(t *testing.T) {
	r := newTestRouter(t)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusCreated, postJSON(r, "/v1/registrations", validStudentBody).Code)
	}
	require.Equal(t, http.StatusCreated, postJSON(r, "/v1/registrations", validTeacherBody).Code)

	rr := get(r, "/v1/summary")
	var sum registry.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sum))
	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, sum.Total, sum.Students+sum.Teachers)
}

func TestReportEmptyListIsNoContent(t *testing.T) {
	r := newTestRouter(t)

	rr := get(r, "/v1/report")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestReportRendersRows(t *testing.T) {
	r := newTestRouter(t)

	require.Equal(t, http.StatusCreated, postJSON(r, "/v1/registrations", validStudentBody).Code)
	require.Equal(t, http.StatusCreated, postJSON(r, "/v1/registrations", validTeacherBody).Code)

	rr := get(r, "/v1/report")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	html := rr.Body.String()
	assert.Equal(t, 2, strings.Count(html, "<tr><td>"))
	assert.Less(t, strings.Index(html, "Sam Rivera"), strings.Index(html, "Jordan Lee"))
	assert.Contains(t, html, "Physics")
	assert.Contains(t, html, "STU-2045")
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	rr := get(r, "/healthz")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)
}

func TestSPAFallbackServesIndex(t *testing.T) {
	r := newTestRouter(t)

	rr := get(r, "/some/client/route")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Registration")
}

func TestUnknownAPIRouteIs404(t *testing.T) {
	r := newTestRouter(t)
	rr := get(r, "/v1/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
