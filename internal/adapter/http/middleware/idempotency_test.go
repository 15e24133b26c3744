package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestRouter(mw gin.HandlerFunc, hits *int) *gin.Engine {
	r := gin.New()
	r.Use(mw)
	r.POST("/pay", func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusCreated, gin.H{"id": "123456"})
	})
	return r
}

func TestIdempotency_PassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("disabled without client", func(t *testing.T) {
		hits := 0
		r := newTestRouter(Idempotency(nil, time.Minute), &hits)

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodPost, "/pay", nil)
			req.Header.Set(idempotencyKeyHeader, "key-1")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusCreated {
				t.Fatalf("expected 201, got %d", w.Code)
			}
		}
		if hits != 2 {
			t.Fatalf("expected handler to run twice, got %d", hits)
		}
	})

	t.Run("disabled without key header", func(t *testing.T) {
		hits := 0
		r := newTestRouter(Idempotency(nil, time.Minute), &hits)

		req := httptest.NewRequest(http.MethodPost, "/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if hits != 1 || w.Header().Get("X-Idempotent-Replay") != "" {
			t.Fatalf("expected plain pass-through, hits=%d", hits)
		}
	})
}
