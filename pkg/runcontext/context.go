package runcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KeyContext string

var (
	keyRunID     KeyContext = "run_id"
	keyUserID    KeyContext = "user_id"
	keyVideoID   KeyContext = "video_id"
	keyStartTime KeyContext = "run_start_time"
)

// RunMetadata holds metadata for one pipeline run
type RunMetadata struct {
	RunID     uuid.UUID
	UserID    uuid.UUID
	VideoID   string
	StartTime time.Time
}

// RunBegin tags ctx with a fresh run id, the requesting user and the start
// time. No deadline is added; the caller's context governs cancellation.
func RunBegin(parentCtx context.Context, userID uuid.UUID) context.Context {
	ctx := context.WithValue(parentCtx, keyRunID, uuid.New())
	ctx = context.WithValue(ctx, keyUserID, userID)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())
	return ctx
}

// SetVideoID records the parsed video identifier
func SetVideoID(ctx context.Context, videoID string) context.Context {
	return context.WithValue(ctx, keyVideoID, videoID)
}

// GetRunID extracts run ID from context
func GetRunID(ctx context.Context) (uuid.UUID, bool) {
	runID, ok := ctx.Value(keyRunID).(uuid.UUID)
	return runID, ok
}

// GetUserID extracts the requesting user from context
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(keyUserID).(uuid.UUID)
	return userID, ok
}

// GetVideoID extracts the video identifier from context
func GetVideoID(ctx context.Context) string {
	videoID, _ := ctx.Value(keyVideoID).(string)
	return videoID
}

// GetStartTime extracts run start time from context
func GetStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyStartTime).(time.Time)
	return startTime, ok
}

// GetRunMetadata extracts all run metadata from context
func GetRunMetadata(ctx context.Context) *RunMetadata {
	runID, _ := GetRunID(ctx)
	userID, _ := GetUserID(ctx)
	startTime, _ := GetStartTime(ctx)

	return &RunMetadata{
		RunID:     runID,
		UserID:    userID,
		VideoID:   GetVideoID(ctx),
		StartTime: startTime,
	}
}

// Fields returns zap fields describing the run, for structured logs
func Fields(ctx context.Context) []zap.Field {
	md := GetRunMetadata(ctx)
	fields := []zap.Field{
		zap.String("run_id", md.RunID.String()),
		zap.String("user_id", md.UserID.String()),
	}
	if md.VideoID != "" {
		fields = append(fields, zap.String("video_id", md.VideoID))
	}
	if !md.StartTime.IsZero() {
		fields = append(fields, zap.Duration("elapsed", time.Since(md.StartTime)))
	}
	return fields
}
