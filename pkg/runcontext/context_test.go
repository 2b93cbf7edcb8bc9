package runcontext

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRunBegin(t *testing.T) {
	userID := uuid.New()
	ctx := RunBegin(context.Background(), userID)
	ctx = SetVideoID(ctx, "abc123")

	md := GetRunMetadata(ctx)
	assert.NotEqual(t, uuid.Nil, md.RunID)
	assert.Equal(t, userID, md.UserID)
	assert.Equal(t, "abc123", md.VideoID)
	assert.False(t, md.StartTime.IsZero())

	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline)
	assert.Len(t, Fields(ctx), 4)
}

func TestGetters_EmptyContext(t *testing.T) {
	ctx := context.Background()

	_, ok := GetRunID(ctx)
	assert.False(t, ok)
	assert.Empty(t, GetVideoID(ctx))
	assert.Len(t, Fields(ctx), 2)
}
