package deeplink

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRecorder struct {
	mu     sync.Mutex
	events []ClickEvent
	err    error
}

func (f *fakeRecorder) AppendClick(_ context.Context, e ClickEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
	return f.err
}

func TestTrackClick_RecordsInBackground(t *testing.T) {
	rec := &fakeRecorder{}
	tr := NewTracker(zap.NewNop(), rec)

	require.NoError(t, tr.TrackClick(" Uber Go ", "Opened"))
	require.NoError(t, tr.TrackClick("RedBus", ClickFallback))
	tr.Wait()

	require.Len(t, rec.events, 2)
	providers := []string{rec.events[0].Provider, rec.events[1].Provider}
	assert.ElementsMatch(t, []string{"Uber Go", "RedBus"}, providers)
	for _, e := range rec.events {
		assert.False(t, e.OccurredAt.IsZero())
	}
}

func TestTrackClick_RecorderErrorIsSwallowed(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("db down")}
	tr := NewTracker(nil, rec)

	assert.NoError(t, tr.TrackClick("Ola", ClickFailed))
	tr.Wait()
	assert.Len(t, rec.events, 1)
}

func TestTrackClick_Validation(t *testing.T) {
	tr := NewTracker(nil, nil)

	assert.ErrorIs(t, tr.TrackClick("", ClickOpened), ErrInvalidClick)
	assert.ErrorIs(t, tr.TrackClick("Uber", "clicked-twice"), ErrInvalidClick)
	assert.NoError(t, tr.TrackClick("Uber", ClickOpened))
}
