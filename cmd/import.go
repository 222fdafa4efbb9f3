package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"mlmusic/catalog"
	"mlmusic/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var importWatch bool

var importCmd = &cobra.Command{
	Use:   "import <tracks.json | drop-dir>",
	Short: "Import tracks from a JSON batch file.",
	Long: `Import tracks from a JSON file. Each entry names the track, its main
author and genre by id, optional featured author ids, and optional local
logo/mp3 files which are uploaded to the media store. Durations are
probed from the audio.

With --watch the argument is a directory; JSON files dropped into it are
imported as they appear.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, cleanup, err := setup()
		if err != nil {
			log.Fatalf("setup failed: %v", err)
		}
		defer cleanup()

		engine, err := newEngine(cfg, true)
		if err != nil {
			log.Fatalf("engine setup failed: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if importWatch {
			if err := watchImports(ctx, engine, args[0]); err != nil {
				log.Fatalf("watch failed: %v", err)
			}
			return
		}

		ok, failed := importFile(ctx, engine, args[0])
		fmt.Printf("imported %d tracks, %d failed\n", ok, failed)
		if failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	importCmd.Flags().BoolVar(&importWatch, "watch", false, "watch a directory for JSON batch files")
	rootCmd.AddCommand(importCmd)
}

// importTrack is one entry of a JSON batch file. The field names match
// the historical import format.
type importTrack struct {
	Name            string  `json:"name"`
	MainAuthor      int64   `json:"main_author"`
	FeaturedAuthors []int64 `json:"featured_authors"`
	Genre           int64   `json:"genre"`
	PublicationTime string  `json:"publication_time"`
	Lyrics          string  `json:"lyrics"`
	Logo            string  `json:"logo"`
	MP3             string  `json:"mp3"`
}

func parsePublicationTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized publication_time %q", value)
}

func mediaFileFor(path string) *catalog.MediaFile {
	if path == "" {
		return nil
	}
	contentType := "application/octet-stream"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		contentType = "audio/mpeg"
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	}
	return &catalog.MediaFile{Path: path, ContentType: contentType}
}

// importFile imports one JSON batch. Failures are reported per entry and
// the batch continues.
func importFile(ctx context.Context, engine *catalog.Engine, path string) (ok, failed int) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("cannot read batch file", logger.String("path", path), logger.ErrorField(err))
		return 0, 1
	}

	var entries []importTrack
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Error("cannot parse batch file", logger.String("path", path), logger.ErrorField(err))
		return 0, 1
	}

	for _, entry := range entries {
		publicationTime, err := parsePublicationTime(entry.PublicationTime)
		if err != nil {
			logger.Error("skipping track", logger.String("track", entry.Name), logger.ErrorField(err))
			failed++
			continue
		}

		_, err = engine.CreateTrack(ctx, catalog.TrackInput{
			Name:              entry.Name,
			MainAuthorID:      entry.MainAuthor,
			FeaturedAuthorIDs: entry.FeaturedAuthors,
			GenreID:           entry.Genre,
			PublicationTime:   publicationTime,
			Lyrics:            entry.Lyrics,
			Logo:              mediaFileFor(entry.Logo),
			Audio:             mediaFileFor(entry.MP3),
		})
		if err != nil {
			logger.Error("failed to import track", logger.String("track", entry.Name), logger.ErrorField(err))
			failed++
			continue
		}

		logger.Info("imported track", logger.String("track", entry.Name))
		ok++
	}
	return ok, failed
}

// watchImports imports JSON files as they are dropped into a directory,
// until the context is cancelled.
func watchImports(ctx context.Context, engine *catalog.Engine, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}
	logger.Info("watching for import batches", logger.String("dir", dir))

	processed := make(map[string]bool)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, okCh := <-watcher.Events:
			if !okCh {
				return nil
			}
			if event.Op&fsnotify.Create == 0 || !strings.HasSuffix(event.Name, ".json") {
				continue
			}
			if processed[event.Name] {
				continue
			}
			processed[event.Name] = true

			// Give the writer a moment to finish the file.
			time.Sleep(500 * time.Millisecond)

			okN, failedN := importFile(ctx, engine, event.Name)
			logger.Info("batch processed",
				logger.String("path", event.Name),
				logger.Int("imported", okN),
				logger.Int("failed", failedN))
		case err, okCh := <-watcher.Errors:
			if !okCh {
				return nil
			}
			logger.Warn("watcher error", logger.ErrorField(err))
		}
	}
}
