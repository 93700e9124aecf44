package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleDashboardSourceReturnsFreshCopies(t *testing.T) {
	src := NewSampleDashboardSource()

	first, err := src.Snapshot(context.Background(), "teacher-1")
	require.NoError(t, err)
	require.Len(t, first.Units, 4)
	require.Len(t, first.TimeSlots, 4)
	assert.Len(t, first.Activities, 10)
	assert.Equal(t, 45, first.TimeSlots[2].Count)

	first.TimeSlots[2].Count = 0
	first.Units[0].Name = "changed"

	second, err := src.Snapshot(context.Background(), "teacher-2")
	require.NoError(t, err)
	assert.Equal(t, 45, second.TimeSlots[2].Count)
	assert.Equal(t, "1단원: 인공지능의 이해", second.Units[0].Name)
	assert.Equal(t, "새벽 (00-06)", timeSlotBuckets[0].Label)
	assert.Equal(t, 0, timeSlotBuckets[2].Count)
}

func TestSampleDashboardSourceHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSampleDashboardSource().Snapshot(ctx, "teacher-1")
	assert.ErrorIs(t, err, context.Canceled)
}
