// Package locale resolves the chat language for a session and holds the
// localized string profiles. Unknown codes never error: resolution falls
// back to the default profile and a bad SetActive is a no-op, so a stale
// or hand-edited preference can't break the widget.
package locale

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultLanguage is used when a session has no stored preference.
const DefaultLanguage = "hi"

const langPrefix = "lang:"

// Known reports whether code has a built-in profile.
func Known(code string) bool {
	_, ok := profiles[code]
	return ok
}

// Resolve returns the profile for code, or the default profile when code is
// unknown. There is no per-field fallback; profiles are complete by
// construction.
func Resolve(code string) Profile {
	if p, ok := profiles[code]; ok {
		return p
	}
	return profiles[DefaultLanguage]
}

// Languages returns the supported language codes.
func Languages() []string {
	return []string{"hi", "en", "pa"}
}

// Resolver persists each session's active language in Redis, mirroring the
// single preferred-language key the widget keeps client-side.
type Resolver struct {
	rdb      *redis.Client
	ttl      time.Duration
	fallback string
	logger   *zap.Logger
}

func NewResolver(rdb *redis.Client, ttl time.Duration, fallback string, logger *zap.Logger) *Resolver {
	if !Known(fallback) {
		fallback = DefaultLanguage
	}
	return &Resolver{rdb: rdb, ttl: ttl, fallback: fallback, logger: logger}
}

// Active returns the stored language for the session, or the fallback when
// none was chosen or the stored value is no longer a known code.
func (r *Resolver) Active(ctx context.Context, sessionID string) string {
	code, err := r.rdb.Get(ctx, langPrefix+sessionID).Result()
	if err == redis.Nil {
		return r.fallback
	}
	if err != nil {
		r.logger.Warn("failed to load language preference",
			zap.String("session_id", sessionID), zap.Error(err))
		return r.fallback
	}
	if !Known(code) {
		return r.fallback
	}
	return code
}

// SetActive stores code as the session's language. Unknown codes are
// ignored and the previous selection is retained. Persistence is
// fire-and-forget: a Redis failure is logged, not returned to the caller.
func (r *Resolver) SetActive(ctx context.Context, sessionID, code string) {
	if !Known(code) {
		r.logger.Debug("ignoring unknown language code",
			zap.String("session_id", sessionID), zap.String("code", code))
		return
	}
	if err := r.rdb.Set(ctx, langPrefix+sessionID, code, r.ttl).Err(); err != nil {
		r.logger.Warn("failed to persist language preference",
			zap.String("session_id", sessionID), zap.Error(err))
	}
}

// Field returns the named field from the profile for code. A missing field
// is a data-completeness defect; returning the key makes it visible without
// crashing.
func Field(code, name string) string {
	if v, ok := Resolve(code)[name]; ok {
		return v
	}
	return fmt.Sprintf("!%s", name)
}
