package cmd

import (
	"fmt"
	"os"
	"time"

	"mlmusic/cache"
	"mlmusic/catalog"
	"mlmusic/config"
	"mlmusic/core/audio"
	"mlmusic/db"
	"mlmusic/logger"
	"mlmusic/repository"
	"mlmusic/storage"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mlmusic",
	Short: "ML Music catalog and moderation tools.",
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration, initializes logging and connects MySQL.
// The returned cleanup closes what was opened.
func setup() (*config.Config, func(), error) {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
	})

	if err := db.ConnectGormDB(cfg); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := db.CloseGormDB(); err != nil {
			logger.Warn("failed to close database", logger.ErrorField(err))
		}
	}
	return cfg, cleanup, nil
}

func newProber(cfg *config.Config) audio.Prober {
	if cfg.AudioProber == "ffprobe" {
		return audio.FFProbeProber{FFmpegPath: cfg.FFmpegPath}
	}
	return audio.TaglibProber{}
}

// newEngine assembles the catalog engine. The media store is only
// connected when the command uploads files; Redis is best-effort.
func newEngine(cfg *config.Config, withMedia bool) (*catalog.Engine, error) {
	var media catalog.MediaStore
	if withMedia {
		store, err := storage.NewMediaStore(cfg)
		if err != nil {
			return nil, err
		}
		media = store
	}

	var feed catalog.FeedCache
	if err := db.ConnectRedis(cfg); err != nil {
		logger.Warn("Redis unavailable, feed caching disabled", logger.ErrorField(err))
	} else {
		feed = cache.NewFeedCache(db.RedisClient, time.Duration(cfg.FeedCacheTTL)*time.Second)
	}

	return catalog.NewEngine(catalog.Deps{
		Genres:    repository.NewGenreRepository(db.GormDB),
		Artists:   repository.NewArtistRepository(db.GormDB),
		Tracks:    repository.NewTrackRepository(db.GormDB),
		Albums:    repository.NewAlbumRepository(db.GormDB),
		Playlists: repository.NewPlaylistRepository(db.GormDB),
		Users:     repository.NewUserRepository(db.GormDB),
		Prober:    newProber(cfg),
		Media:     media,
		Feed:      feed,
		Policy:    catalog.Policy{HomeAlbumsPublishedOnly: cfg.HomeAlbumsPublishedOnly},
	}), nil
}
