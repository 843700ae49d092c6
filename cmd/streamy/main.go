package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amaumene/streamy/internal/config"
	"github.com/amaumene/streamy/internal/constants"
	"github.com/amaumene/streamy/pkg/logger"
	tsmodels "github.com/amaumene/streamy/pkg/torrentsearch/models"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:          "streamy",
		Short:        constants.APIDescription,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	root.AddCommand(serve, newTorrentsCommand(), newVersionCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := logger.NewWithOptions(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
			if !logger.ValidLevel(cfg.LogLevel) {
				log.Warnf("[App] unknown log level '%s', defaulting to info", cfg.LogLevel)
			}

			app, err := NewApp(cfg, log)
			if err != nil {
				log.Errorf("[App] failed to initialize: %v", err)
				return err
			}
			defer app.Close()

			log.Infof("[App] %s %s (%s)", constants.APIName, constants.APIVersion, version)
			return app.Run(cmd.Context())
		},
	}
}

type torrentsOptions struct {
	kind    string
	season  int
	episode int
}

func newTorrentsCommand() *cobra.Command {
	opts := torrentsOptions{}

	cmd := &cobra.Command{
		Use:   "torrents <title>",
		Short: "Run one ranked torrent lookup and print the results as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := opts.target(args[0])
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := logger.NewWriter(cmd.ErrOrStderr(), cfg.LogLevel)
			search := newTorrentSearch(cfg, nil, log)
			results := search.Search(cmd.Context(), target)

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(results)
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", "movie", "Content kind: movie, tv or any")
	cmd.Flags().IntVar(&opts.season, "season", -1, "Season number (tv only)")
	cmd.Flags().IntVar(&opts.episode, "episode", -1, "Episode number (tv only, requires --season)")
	return cmd
}

// target turns the command line into a search target.
func (o torrentsOptions) target(title string) (tsmodels.Target, error) {
	switch o.kind {
	case "movie":
		if o.season >= 0 || o.episode >= 0 {
			return tsmodels.Target{}, errors.New("--season and --episode require --kind tv")
		}
		return tsmodels.MovieTarget(title), nil
	case "any":
		if o.season >= 0 || o.episode >= 0 {
			return tsmodels.Target{}, errors.New("--season and --episode require --kind tv")
		}
		return tsmodels.Target{Title: title, Kind: tsmodels.KindAny}, nil
	case "tv":
		switch {
		case o.episode >= 0 && o.season < 0:
			return tsmodels.Target{}, errors.New("--episode requires --season")
		case o.episode >= 0:
			return tsmodels.EpisodeTarget(title, o.season, o.episode), nil
		case o.season >= 0:
			return tsmodels.SeasonTarget(title, o.season), nil
		default:
			return tsmodels.ShowTarget(title), nil
		}
	default:
		return tsmodels.Target{}, fmt.Errorf("unknown kind %q: must be movie, tv or any", o.kind)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s (build %s)\n", constants.APIName, constants.APIVersion, version)
		},
	}
}
