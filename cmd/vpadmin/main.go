package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Jaydeep9963/video-player-admin/internal/api"
	"github.com/Jaydeep9963/video-player-admin/internal/cache"
	"github.com/Jaydeep9963/video-player-admin/internal/config"
	"github.com/Jaydeep9963/video-player-admin/internal/media"
	"github.com/Jaydeep9963/video-player-admin/internal/session"
	"github.com/Jaydeep9963/video-player-admin/internal/storage"
	"github.com/Jaydeep9963/video-player-admin/internal/transport"
)

// app wires the client stack together once per invocation
type app struct {
	cfg   *config.Config
	log   *zap.Logger
	store *session.Store
	guard *session.Guard
	inv   *cache.Invalidator
	urls  *media.URLBuilder

	auth          *api.AuthService
	categories    *api.Categories
	subcategories *api.Subcategories
	videos        *api.Videos
	shorts        *api.Shorts
	feedback      *api.Feedback
	overview      *api.Overview
	content       *api.ContentService
	notifications *api.NotificationService
}

func newApp(configFile string) (*app, error) {
	var cfg *config.Config
	var err error
	if configFile != "" {
		cfg, err = config.LoadFile(configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	var log *zap.Logger
	if cfg.Environment == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	var creds storage.CredentialStore
	if cfg.RedisURL != "" {
		creds, err = storage.NewRedisStore(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis session store: %w", err)
		}
	} else {
		creds = storage.NewFileStore(cfg.SessionFile)
	}

	store := session.NewStore(creds, log)
	guard := session.NewGuard(store, cfg.TokenCheckInterval, nil, log)
	inv := cache.NewInvalidator()

	client := transport.NewClient(cfg.APIBaseURL, store, log,
		transport.WithRetry(cfg.HTTPTimeout))

	return &app{
		cfg:           cfg,
		log:           log,
		store:         store,
		guard:         guard,
		inv:           inv,
		urls:          media.NewURLBuilder(cfg.ImageBaseURL, cfg.VideoBaseURL, nil),
		auth:          api.NewAuth(client, store, log),
		categories:    api.NewCategories(client, inv, log),
		subcategories: api.NewSubcategories(client, inv, log),
		videos:        api.NewVideos(client, inv, log),
		shorts:        api.NewShorts(client, inv, log),
		feedback:      api.NewFeedback(client, inv, log),
		overview:      api.NewOverview(client, inv, log),
		content:       api.NewContent(client, inv, log),
		notifications: api.NewNotifications(client, log),
	}, nil
}

// printJSON renders a value for the terminal
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	var configFile string
	var a *app

	root := &cobra.Command{
		Use:           "vpadmin",
		Short:         "Admin client for the video platform backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(configFile)
			if err != nil {
				return err
			}
			a.guard.Start()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a != nil {
				a.guard.Stop()
				a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file (default: environment variables)")

	root.AddCommand(
		newLoginCmd(&a),
		newLogoutCmd(&a),
		newWhoamiCmd(&a),
		newCategoriesCmd(&a),
		newSubcategoriesCmd(&a),
		newVideosCmd(&a),
		newShortsCmd(&a),
		newFeedbackCmd(&a),
		newOverviewCmd(&a),
		newContentCmd(&a),
		newNotifyCmd(&a),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
