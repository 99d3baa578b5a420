package deeplink

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const recordTimeout = 3 * time.Second

// ClickRecorder persists click events.
type ClickRecorder interface {
	AppendClick(ctx context.Context, e ClickEvent) error
}

// Tracker is the fire-and-forget analytics hook for deep link clicks.
type Tracker struct {
	log      *zap.Logger
	recorder ClickRecorder
	now      func() time.Time
	wg       sync.WaitGroup
}

// NewTracker returns a Tracker. recorder may be nil, in which case clicks are only logged.
func NewTracker(log *zap.Logger, recorder ClickRecorder) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{log: log, recorder: recorder, now: time.Now}
}

// TrackClick validates and logs the click, then records it in the background.
// It never blocks on the recorder and never reports recorder failures to the caller.
func (t *Tracker) TrackClick(provider, status string) error {
	provider = strings.TrimSpace(provider)
	status = strings.ToLower(strings.TrimSpace(status))
	if provider == "" || !validClickStatus(status) {
		return ErrInvalidClick
	}

	e := ClickEvent{Provider: provider, Status: status, OccurredAt: t.now().UTC()}
	t.log.Info("deeplink click", zap.String("provider", provider), zap.String("status", status))

	if t.recorder == nil {
		return nil
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := t.recorder.AppendClick(ctx, e); err != nil {
			t.log.Warn("failed to record deeplink click", zap.String("provider", e.Provider), zap.Error(err))
		}
	}()
	return nil
}

// Wait blocks until in-flight recordings finish. Used on shutdown.
func (t *Tracker) Wait() {
	t.wg.Wait()
}
