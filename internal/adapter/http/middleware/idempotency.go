package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyKeyHeader = "X-Idempotency-Key"

type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// Idempotency replays the stored response for a repeated POST carrying the
// same X-Idempotency-Key. Front-ends retry checkout on flaky connections;
// without this a retry would attempt a second charge.
//
// A nil client disables the middleware. Only successful JSON responses are
// cached, so a failed attempt can still be retried with the same key.
func Idempotency(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		key := c.GetHeader(idempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		cacheKey := "idempotency:" + key

		if raw, err := rdb.Get(c.Request.Context(), cacheKey).Bytes(); err == nil {
			var cached cachedResponse
			if json.Unmarshal(raw, &cached) == nil && cached.Status != 0 {
				log.Printf("[idempotency] replay key=%s status=%d", key, cached.Status)
				c.Header("X-Idempotent-Replay", "true")
				c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
				c.Abort()
				return
			}
		}

		w := &bodyCaptureWriter{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = w
		c.Next()

		status := w.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		payload, err := json.Marshal(cachedResponse{Status: status, Body: w.buf.Bytes()})
		if err != nil {
			return
		}
		// The request context may already be done once the response is out.
		storeCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rdb.Set(storeCtx, cacheKey, payload, ttl).Err(); err != nil {
			log.Printf("[idempotency] store failed key=%s err=%v", key, err)
		}
	}
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
