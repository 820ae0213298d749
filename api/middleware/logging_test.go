// ABOUTME: Tests for the request logging middleware
// ABOUTME: Verifies request IDs, status capture and log emission

package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

func (l *capturingLogger) log(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level, msg, fields})
}

func (l *capturingLogger) Debug(msg string, fields map[string]interface{}) { l.log("debug", msg, fields) }
func (l *capturingLogger) Info(msg string, fields map[string]interface{})  { l.log("info", msg, fields) }
func (l *capturingLogger) Warn(msg string, fields map[string]interface{})  { l.log("warn", msg, fields) }
func (l *capturingLogger) Error(msg string, fields map[string]interface{}) { l.log("error", msg, fields) }

func (l *capturingLogger) byLevel(level string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []logEntry
	for _, e := range l.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}

func TestRequestLogging_SetsRequestID(t *testing.T) {
	logger := &capturingLogger{}
	handler := RequestLogging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workflows", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestLogging_LogsStartAndCompletion(t *testing.T) {
	logger := &capturingLogger{}
	handler := RequestLogging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/workflows", nil))

	infos := logger.byLevel("info")
	require.Len(t, infos, 2)
	assert.Equal(t, "Request started", infos[0].msg)
	assert.Equal(t, "Request completed", infos[1].msg)
	assert.Equal(t, http.StatusCreated, infos[1].fields["status"])
	assert.Equal(t, "/workflows", infos[1].fields["path"])
}

func TestRequestLogging_DefaultsStatusToOK(t *testing.T) {
	logger := &capturingLogger{}
	handler := RequestLogging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	infos := logger.byLevel("info")
	require.Len(t, infos, 2)
	assert.Equal(t, http.StatusOK, infos[1].fields["status"])
}

func TestRequestLogging_ServerErrorsLogged(t *testing.T) {
	logger := &capturingLogger{}
	handler := RequestLogging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	errs := logger.byLevel("error")
	require.Len(t, errs, 1)
	assert.Equal(t, http.StatusInternalServerError, errs[0].fields["status"])
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusTeapot, rw.statusCode)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestExtractIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, "10.0.0.1:1234", extractIP(r))

	r.Header.Set("X-Real-IP", "5.6.7.8")
	assert.Equal(t, "5.6.7.8", extractIP(r))

	r.Header.Set("X-Forwarded-For", "1.2.3.4")
	assert.Equal(t, "1.2.3.4", extractIP(r))
}
