package main

import (
	"context"

	"go.uber.org/zap"

	"oneyatra/internal/ai"
	"oneyatra/internal/config"
	"oneyatra/internal/infra"
	"oneyatra/internal/maps"
	"oneyatra/internal/modules/deeplink"
	"oneyatra/internal/modules/pricing"
	"oneyatra/internal/modules/travel"
	"oneyatra/internal/service"
)

// components holds the wired services. Optional backends that fail to
// initialize are logged and left disabled.
type components struct {
	log     *zap.Logger
	pricing *pricing.Service
	planner *service.TravelPlanner
	tracker *deeplink.Tracker
	clicks  *deeplink.Store
	closers []func()
}

func (c *components) Close() {
	if c.tracker != nil {
		c.tracker.Wait()
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.log.Sync()
}

func wire(ctx context.Context, cfg config.Config, withAnalytics bool) (*components, error) {
	log, err := infra.NewLogger(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	c := &components{log: log}

	pricingSvc := pricing.NewService(pricing.NewSurgeCalculator(nil))
	c.pricing = pricingSvc

	var provider ai.LLMProvider
	if cfg.AI.GeminiKey != "" {
		gp, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
		if err != nil {
			log.Warn("gemini unavailable, running offline", zap.Error(err))
		} else {
			provider = gp
			c.closers = append(c.closers, func() { _ = gp.Close() })
		}
	} else {
		log.Info("GEMINI_API_KEY not set, running offline")
	}

	opts := service.PlannerOptions{
		Retry:   ai.RetryPolicy{BaseDelay: cfg.AI.RetryBaseDelay, MaxRetries: cfg.AI.MaxRetries},
		Timeout: cfg.AI.Timeout,
	}

	if cfg.Redis.Addr != "" {
		rdb, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Warn("redis unavailable, route cache disabled", zap.Error(err))
		} else {
			opts.Cache = travel.NewStore(rdb, cfg.Redis.RouteCacheTTL)
			c.closers = append(c.closers, func() { _ = rdb.Close() })
		}
	}

	if cfg.Maps.APIKey != "" {
		routes, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.Warn("maps unavailable, using static cab estimates", zap.Error(err))
		} else {
			opts.Estimator = routes
		}
	}

	c.planner = service.NewTravelPlanner(log, provider, travel.NewEnricher(pricingSvc, nil), opts)

	var recorder deeplink.ClickRecorder
	if withAnalytics && cfg.DB.DSN != "" {
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Warn("postgres unavailable, click analytics are log-only", zap.Error(err))
		} else {
			c.clicks = deeplink.NewStore(pool)
			recorder = c.clicks
			c.closers = append(c.closers, pool.Close)
		}
	}
	c.tracker = deeplink.NewTracker(log, recorder)

	return c, nil
}
