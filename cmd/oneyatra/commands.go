package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"oneyatra/internal/config"
	httptransport "oneyatra/internal/http"
	"oneyatra/internal/infra"
	"oneyatra/internal/modules/deeplink"
	"oneyatra/internal/modules/travel"
)

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:        "oneyatra",
		Usage:       "multi-modal travel search for India",
		Description: "Serves the OneYatra travel API and exposes its pricing, search and deep link tools on the command line",
		Writer:      out,
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			searchCommand(),
			chatCommand(),
			deeplinkCommand(),
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "migrate", Usage: "apply database migrations before serving"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			if c.Bool("migrate") && cfg.DB.DSN != "" {
				if _, err := infra.Migrate(ctx, cfg.DB.DSN); err != nil {
					return err
				}
			}

			comps, err := wire(ctx, cfg, true)
			if err != nil {
				return err
			}
			defer comps.Close()

			deps := httptransport.RouterDeps{
				Log:     comps.log,
				Planner: comps.planner,
				Pricing: comps.pricing,
				Tracker: comps.tracker,
			}
			if comps.clicks != nil {
				deps.Clicks = comps.clicks
			}

			return httptransport.NewServer(comps.log, cfg.HTTP.Addr, httptransport.NewRouter(deps)).Run(ctx)
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply database migrations for click analytics",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DB.DSN == "" {
				return fmt.Errorf("ONEYATRA_DB_DSN is required")
			}
			n, err := infra.Migrate(c.Context, cfg.DB.DSN)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.App.Writer, "applied %d migration(s)\n", n)
			return err
		},
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "search routes and print the enriched response as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Required: true},
			&cli.StringFlag{Name: "to", Required: true},
			&cli.StringFlag{Name: "date"},
			&cli.StringFlag{Name: "time"},
			&cli.IntFlag{Name: "passengers", Value: 1},
			&cli.StringFlag{Name: "trip", Value: string(travel.TripOneWay), Usage: "ONE_WAY or ROUND_TRIP"},
			&cli.StringFlag{Name: "return-date"},
			&cli.StringFlag{Name: "return-time"},
			&cli.StringFlag{Name: "mode", Value: string(travel.ModeAll)},
		},
		Action: func(c *cli.Context) error {
			params := travel.SearchParams{
				Origin:      c.String("from"),
				Destination: c.String("to"),
				Date:        c.String("date"),
				Time:        c.String("time"),
				Passengers:  c.Int("passengers"),
				TripType:    travel.TripType(strings.ToUpper(c.String("trip"))),
				Mode:        travel.Mode(strings.ToUpper(c.String("mode"))),
				ReturnDate:  c.String("return-date"),
				ReturnTime:  c.String("return-time"),
			}.Normalize()
			if err := params.Validate(); err != nil {
				return fmt.Errorf("%w: check trip type, mode and return date", err)
			}

			comps, err := loadComponents(c.Context)
			if err != nil {
				return err
			}
			defer comps.Close()

			return printJSON(c.App.Writer, comps.planner.Search(c.Context, params))
		},
	}
}

func chatCommand() *cli.Command {
	return &cli.Command{
		Name:      "chat",
		Usage:     "ask the travel assistant a question",
		ArgsUsage: "<message>",
		Action: func(c *cli.Context) error {
			msg := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if msg == "" {
				return fmt.Errorf("missing message")
			}
			comps, err := loadComponents(c.Context)
			if err != nil {
				return err
			}
			defer comps.Close()

			_, err = fmt.Fprintln(c.App.Writer, comps.planner.Chat(c.Context, msg, nil))
			return err
		},
	}
}

func deeplinkCommand() *cli.Command {
	return &cli.Command{
		Name:  "deeplink",
		Usage: "print the booking links for a provider",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "provider", Required: true},
			&cli.StringFlag{Name: "mode", Value: string(travel.ModeCab)},
			&cli.StringFlag{Name: "from", Required: true},
			&cli.StringFlag{Name: "to", Required: true},
		},
		Action: func(c *cli.Context) error {
			res := deeplink.Generate(c.String("provider"), strings.ToUpper(c.String("mode")), c.String("from"), c.String("to"))
			return printJSON(c.App.Writer, res)
		},
	}
}

func loadComponents(ctx context.Context) (*components, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return wire(ctx, cfg, false)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
