package httpx_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gunvolt24/csvgate/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func newLimitedRouter(limit int64, readErr *error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/preflight", httpx.LimitBody(limit), func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		*readErr = err
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestLimitBody_DeclaredLengthTooLarge(t *testing.T) {
	var readErr error
	r := newLimitedRouter(8, &readErr)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/preflight", strings.NewReader(strings.Repeat("x", 64)))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("want 413, got %d", w.Code)
	}
}

func TestLimitBody_UnknownLengthCutOff(t *testing.T) {
	var readErr error
	r := newLimitedRouter(8, &readErr)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/preflight", strings.NewReader(strings.Repeat("x", 64)))
	req.ContentLength = -1
	r.ServeHTTP(w, req)

	if !httpx.IsBodyTooLarge(readErr) {
		t.Fatalf("want MaxBytesError, got %v", readErr)
	}
	if !httpx.IsBodyTooLarge(fmt.Errorf("multipart: NextPart: %w", readErr)) {
		t.Fatalf("wrapped MaxBytesError must be recognized")
	}
}

func TestLimitBody_WithinLimit(t *testing.T) {
	var readErr error
	r := newLimitedRouter(64, &readErr)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/preflight", strings.NewReader("small"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent || readErr != nil {
		t.Fatalf("want 204 and no read error, got %d err=%v", w.Code, readErr)
	}
}

func TestLimitBody_Disabled(t *testing.T) {
	var readErr error
	r := newLimitedRouter(0, &readErr)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/preflight", strings.NewReader(strings.Repeat("x", 1024)))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent || readErr != nil {
		t.Fatalf("limit 0 must not restrict body, got %d err=%v", w.Code, readErr)
	}
}
