package db

import (
	"bytes"
	"context"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bec-courses/course-api/internal/cache"
)

// Needs TEST_REDIS_ADDR (e.g. localhost:6379) on top of TEST_DATABASE_URL.
func TestCachedReads_SurviveCacheOutage(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	redisCache, err := cache.NewRedisCache(addr, time.Minute)
	require.NoError(t, err)

	repo := NewCourseRepository(testDB(t))
	cached := NewCachedCourseRepository(repo, redisCache)
	course := seedCourse(t, repo, 5)

	// Redis goes away after startup.
	require.NoError(t, redisCache.Close())

	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	ctx := context.Background()

	all, err := cached.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	one, err := cached.GetByID(ctx, course.ID)
	require.NoError(t, err)
	require.Equal(t, course.ID, one.ID)

	// Both read paths report the failed lookup the same way.
	require.Equal(t, 2, strings.Count(logs.String(), "Cache error"))
}
