package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/repository"
)

const (
	// IdempotencyKeyHeader is the header POS terminals send on mutations
	// they may retry after a network drop.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long a cached response can be replayed.
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyConfig holds dependencies for the idempotency middleware.
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
}

type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response for a repeated mutation carrying
// the same Idempotency-Key, so a retried pay or add-line never re-executes.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		actor := GetActor(c)
		if actor == nil {
			c.Next()
			return
		}

		existing, err := config.Repo.GetByKey(c.Request.Context(), key, actor.UserID)
		if err != nil {
			c.Next()
			return
		}
		if existing != nil && !existing.IsExpired() {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		cw := &captureWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = cw

		c.Next()

		// only cache successful outcomes; a failed mutation may be retried
		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			_ = config.Repo.Create(c.Request.Context(), &entity.IdempotencyKey{
				Key:          key,
				UserID:       actor.UserID,
				Endpoint:     c.Request.Method + " " + c.FullPath(),
				ResponseCode: status,
				ResponseBody: cw.body.String(),
				ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
			})
		}
	}
}
