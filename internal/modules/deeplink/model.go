// README: Deep link result and click analytics event definitions.
package deeplink

import (
	"errors"
	"time"
)

// Result bundles the links needed to open a provider's booking flow.
type Result struct {
	URL           string `json:"url"`
	FallbackURL   string `json:"fallbackUrl"`
	AndroidIntent string `json:"androidIntent,omitempty"`
	IsUniversal   bool   `json:"isUniversal"`
}

// ClickEvent records the outcome of a user tapping a deep link.
type ClickEvent struct {
	Provider   string
	Status     string
	OccurredAt time.Time
}

const (
	ClickOpened   = "opened"
	ClickFallback = "fallback"
	ClickFailed   = "failed"
)

var ErrInvalidClick = errors.New("invalid click event")

func validClickStatus(s string) bool {
	switch s {
	case ClickOpened, ClickFallback, ClickFailed:
		return true
	}
	return false
}
