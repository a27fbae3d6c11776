// Package stats tracks service-level generation metrics in Redis: per-family
// counters, request totals, active users, rolling latency, and a bounded ring
// of recent errors. Every write is best-effort; a Redis outage is logged and
// never fails a generation request.
package stats

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	metricsKey = "metrics:media"
	usersKey   = "metrics:users"
	errorsKey  = "metrics:errors"

	// recentErrorLimit bounds the error ring.
	recentErrorLimit = 10
)

// Snapshot is a point-in-time view of the service counters.
type Snapshot struct {
	ImagesGenerated int64 `json:"images_generated"`
	VideosGenerated int64 `json:"videos_generated"`
	AudioGenerated  int64 `json:"audio_generated"`
	TotalRequests   int64 `json:"total_requests"`
	ActiveUsers     int64 `json:"active_users"`
	// AvgGenerationMS is an exponentially weighted average across all
	// families.
	AvgGenerationMS int64 `json:"avg_generation_ms"`
}

// Recorder writes and reads the service metrics.
type Recorder struct {
	rdb *redis.Client
}

// NewRecorder creates a metrics recorder on the given Redis client.
func NewRecorder(rdb *redis.Client) *Recorder {
	return &Recorder{rdb: rdb}
}

// RecordGeneration bumps the counters for one completed generation.
func (r *Recorder) RecordGeneration(ctx context.Context, mediaType, userID string, latency time.Duration) {
	field := counterField(mediaType)

	pipe := r.rdb.Pipeline()
	pipe.HIncrBy(ctx, metricsKey, field, 1)
	pipe.HIncrBy(ctx, metricsKey, "total_requests", 1)
	if userID != "" {
		pipe.SAdd(ctx, usersKey, userID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("WARNING: failed to record generation metrics: %v", err)
		return
	}

	r.updateAvgLatency(ctx, latency)
}

// RecordError appends an error to the bounded recent-error ring.
func (r *Recorder) RecordError(ctx context.Context, mediaType string, genErr error) {
	entry := fmt.Sprintf("%s|%s|%v", time.Now().Format(time.RFC3339), mediaType, genErr)
	pipe := r.rdb.Pipeline()
	pipe.LPush(ctx, errorsKey, entry)
	pipe.LTrim(ctx, errorsKey, 0, recentErrorLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("WARNING: failed to record error metric: %v", err)
	}
}

// RecentErrors returns the newest entries of the error ring, newest first.
func (r *Recorder) RecentErrors(ctx context.Context) []string {
	entries, err := r.rdb.LRange(ctx, errorsKey, 0, recentErrorLimit-1).Result()
	if err != nil {
		log.Printf("WARNING: failed to read recent errors: %v", err)
		return nil
	}
	return entries
}

// GetSnapshot reads the current counters. Missing fields read as zero, so a
// fresh deployment reports a clean slate rather than an error.
func (r *Recorder) GetSnapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	data, err := r.rdb.HGetAll(ctx, metricsKey).Result()
	if err != nil {
		return snap, err
	}
	snap.ImagesGenerated, _ = strconv.ParseInt(data["images_generated"], 10, 64)
	snap.VideosGenerated, _ = strconv.ParseInt(data["videos_generated"], 10, 64)
	snap.AudioGenerated, _ = strconv.ParseInt(data["audio_generated"], 10, 64)
	snap.TotalRequests, _ = strconv.ParseInt(data["total_requests"], 10, 64)
	snap.AvgGenerationMS, _ = strconv.ParseInt(data["avg_generation_ms"], 10, 64)

	snap.ActiveUsers, err = r.rdb.SCard(ctx, usersKey).Result()
	if err != nil {
		return snap, err
	}
	return snap, nil
}

// updateAvgLatency folds one observation into the stored rolling average.
func (r *Recorder) updateAvgLatency(ctx context.Context, latency time.Duration) {
	const alpha = 0.1

	err := r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		currentStr, err := tx.HGet(ctx, metricsKey, "avg_generation_ms").Result()
		if err != nil && err != redis.Nil {
			return err
		}
		current, _ := strconv.ParseInt(currentStr, 10, 64)
		if current == 0 {
			current = latency.Milliseconds()
		}
		updated := int64(alpha*float64(latency.Milliseconds()) + (1.0-alpha)*float64(current))
		_, err = tx.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, metricsKey, "avg_generation_ms", updated)
			return nil
		})
		return err
	}, metricsKey)
	if err != nil {
		log.Printf("WARNING: failed to update average latency: %v", err)
	}
}

func counterField(mediaType string) string {
	switch mediaType {
	case "video":
		return "videos_generated"
	case "audio":
		return "audio_generated"
	default:
		return "images_generated"
	}
}
