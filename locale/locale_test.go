package locale

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProfilesAreComplete(t *testing.T) {
	for _, code := range Languages() {
		profile := Resolve(code)
		require.Len(t, profile, len(FieldNames), "profile %s has stray or missing fields", code)
		for _, field := range FieldNames {
			assert.NotEmpty(t, profile[field], "profile %s field %s", code, field)
		}
	}
}

func TestResolveUnknownFallsBack(t *testing.T) {
	fallback := Resolve(DefaultLanguage)
	assert.Equal(t, fallback["home"], Resolve("zz-unknown")["home"])
	assert.Equal(t, fallback["chatWithAI"], Resolve("")["chatWithAI"])
}

func TestKnown(t *testing.T) {
	for _, code := range Languages() {
		assert.True(t, Known(code))
	}
	assert.False(t, Known("zz-unknown"))
	assert.False(t, Known("HI")) // codes are case-sensitive, as stored
}

func TestField(t *testing.T) {
	assert.Equal(t, "Home", Field("en", "home"))
	assert.Equal(t, "होम", Field("zz-unknown", "home"))
	assert.Equal(t, "!nonexistent", Field("en", "nonexistent"))
}

// unreachableResolver returns a Resolver whose Redis client points nowhere.
// SetActive with an unknown code must not touch Redis at all, and Active
// must fall back rather than fail.
func unreachableResolver(t *testing.T) *Resolver {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	return NewResolver(rdb, time.Hour, "en", zap.NewNop())
}

func TestSetActiveUnknownCodeIsNoOp(t *testing.T) {
	r := unreachableResolver(t)
	ctx := context.Background()

	before := r.Active(ctx, "sess-1")
	r.SetActive(ctx, "sess-1", "zz-unknown")
	assert.Equal(t, before, r.Active(ctx, "sess-1"))
}

func TestActiveFallsBackWhenStoreUnavailable(t *testing.T) {
	r := unreachableResolver(t)
	assert.Equal(t, "en", r.Active(context.Background(), "sess-1"))
}

func TestNewResolverRejectsUnknownFallback(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	r := NewResolver(rdb, time.Hour, "zz-unknown", zap.NewNop())
	assert.Equal(t, DefaultLanguage, r.fallback)
}
