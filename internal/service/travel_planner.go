// README: Travel planner orchestrating cache, AI generation with retry, mock fallback and enrichment.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"oneyatra/internal/ai"
	"oneyatra/internal/modules/travel"
)

const (
	DefaultAITimeout  = 30 * time.Second
	estimateTimeout   = 3 * time.Second
	cacheWriteTimeout = 2 * time.Second
)

var errOffline = errors.New("no AI provider configured")

// RouteCache stores raw planner output keyed by search params.
type RouteCache interface {
	Get(ctx context.Context, params travel.SearchParams) (travel.RouteResponse, error)
	Put(ctx context.Context, params travel.SearchParams, resp travel.RouteResponse) error
}

// RouteEstimator supplies driving distance and duration for the offline cab option.
type RouteEstimator interface {
	Estimate(ctx context.Context, origin, destination string) (travel.RouteEstimate, error)
}

// PlannerOptions holds the optional collaborators of a TravelPlanner. Zero values
// disable the corresponding feature.
type PlannerOptions struct {
	Cache     RouteCache
	Estimator RouteEstimator
	Retry     ai.RetryPolicy
	Timeout   time.Duration
}

// TravelPlanner turns search params into enriched route responses. It never
// fails: any upstream problem degrades to the mock dataset.
type TravelPlanner struct {
	log       *zap.Logger
	provider  ai.LLMProvider
	enricher  *travel.Enricher
	cache     RouteCache
	estimator RouteEstimator
	retry     ai.RetryPolicy
	timeout   time.Duration
}

// NewTravelPlanner wires a planner. A nil provider runs in offline mode.
func NewTravelPlanner(log *zap.Logger, provider ai.LLMProvider, enricher *travel.Enricher, opts PlannerOptions) *TravelPlanner {
	if log == nil {
		log = zap.NewNop()
	}
	if enricher == nil {
		enricher = travel.NewEnricher(nil, nil)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultAITimeout
	}
	retry := opts.Retry
	defaults := ai.DefaultRetryPolicy()
	if retry.BaseDelay <= 0 {
		retry.BaseDelay = defaults.BaseDelay
	}
	if retry.MaxRetries <= 0 {
		retry.MaxRetries = defaults.MaxRetries
	}
	if retry.OnRetry == nil {
		retry.OnRetry = func(attempt int, delay time.Duration, err error) {
			log.Warn("AI rate limited, backing off",
				zap.Int("attempt", attempt), zap.Duration("delay", delay), zap.Error(err))
		}
	}
	return &TravelPlanner{
		log:       log,
		provider:  provider,
		enricher:  enricher,
		cache:     opts.Cache,
		estimator: opts.Estimator,
		retry:     retry,
		timeout:   opts.Timeout,
	}
}

// Online reports whether live generation is configured.
func (p *TravelPlanner) Online() bool {
	return p.provider != nil
}

// Search returns enriched options for params. Callers are expected to have
// validated params; the planner only normalizes them.
func (p *TravelPlanner) Search(ctx context.Context, params travel.SearchParams) travel.RouteResponse {
	params = params.Normalize()

	raw, err := p.fetchLive(ctx, params)
	if err != nil {
		if errors.Is(err, errOffline) {
			p.log.Debug("serving mock routes in offline mode")
		} else {
			p.log.Warn("live route generation failed, serving mock routes",
				zap.String("origin", params.Origin),
				zap.String("destination", params.Destination),
				zap.Error(err))
		}
		raw = p.mockRoutes(ctx, params)
	}

	return p.enricher.ProcessResponse(raw, params)
}

// fetchLive returns a raw, unenriched response from the cache or the model.
func (p *TravelPlanner) fetchLive(ctx context.Context, params travel.SearchParams) (travel.RouteResponse, error) {
	if p.provider == nil {
		return travel.RouteResponse{}, errOffline
	}

	if p.cache != nil {
		cached, err := p.cache.Get(ctx, params)
		switch {
		case err == nil:
			cached.Source = travel.SourceCache
			return cached, nil
		case !errors.Is(err, travel.ErrCacheMiss):
			p.log.Warn("route cache read failed", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	prompt := ai.BuildRoutePrompt(params)
	var raw string
	err := p.retry.Do(ctx, func(ctx context.Context) error {
		out, err := p.provider.GenerateRoutePlan(ctx, prompt)
		raw = out
		return err
	})
	if err != nil {
		return travel.RouteResponse{}, fmt.Errorf("generate route plan: %w", err)
	}

	resp, err := ai.ParseRoutePlan(raw)
	if err != nil {
		return travel.RouteResponse{}, err
	}
	fillFromParams(&resp, params)

	if p.cache != nil {
		p.storeInCache(params, resp)
	}
	resp.Source = travel.SourceLive
	return resp, nil
}

func (p *TravelPlanner) storeInCache(params travel.SearchParams, resp travel.RouteResponse) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheWriteTimeout)
	defer cancel()
	if err := p.cache.Put(ctx, params, resp); err != nil {
		p.log.Warn("route cache write failed", zap.Error(err))
	}
}

func (p *TravelPlanner) mockRoutes(ctx context.Context, params travel.SearchParams) travel.RouteResponse {
	var est *travel.RouteEstimate
	if p.estimator != nil && params.TripType != travel.TripMultiCity {
		ectx, cancel := context.WithTimeout(context.WithoutCancel(ctx), estimateTimeout)
		e, err := p.estimator.Estimate(ectx, params.Origin, params.Destination)
		cancel()
		if err != nil {
			p.log.Debug("route estimate unavailable", zap.Error(err))
		} else {
			est = &e
		}
	}
	return travel.MockRoutes(params, est)
}

func fillFromParams(resp *travel.RouteResponse, params travel.SearchParams) {
	if resp.Origin == "" {
		resp.Origin = params.Origin
	}
	if resp.Destination == "" {
		resp.Destination = params.Destination
	}
	if resp.Date == "" {
		resp.Date = params.Date
	}
	if params.TripType == travel.TripRoundTrip && resp.ReturnDate == "" {
		resp.ReturnDate = params.ReturnDate
	}
}

// Chat answers message in the assistant persona. Without a provider, or when
// every attempt fails, it returns ai.OfflineChatReply.
func (p *TravelPlanner) Chat(ctx context.Context, message string, history []ai.ChatMessage) string {
	if p.provider == nil {
		return ai.OfflineChatReply
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var reply string
	err := p.retry.Do(ctx, func(ctx context.Context) error {
		out, err := p.provider.Chat(ctx, history, message)
		reply = out
		return err
	})
	if err != nil || strings.TrimSpace(reply) == "" {
		p.log.Warn("chat completion failed, replying offline", zap.Error(err))
		return ai.OfflineChatReply
	}
	return reply
}
