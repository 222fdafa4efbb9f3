package cmd

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"mlmusic/catalog"
	"mlmusic/model"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Bulk moderation actions.",
	Long: `Bulk moderation actions over catalog rows. All actions are
idempotent: re-applying a status a row already has is a no-op.`,
}

func init() {
	adminCmd.AddCommand(
		statusCommand("publish-tracks", "Publish tracks by id.", func(e *catalog.Engine, ctx context.Context, ids []int64) (int64, error) {
			return e.SetTrackStatus(ctx, ids, model.TrackPublished)
		}),
		statusCommand("unpublish-tracks", "Unpublish tracks by id.", func(e *catalog.Engine, ctx context.Context, ids []int64) (int64, error) {
			return e.SetTrackStatus(ctx, ids, model.TrackUnreleased)
		}),
		statusCommand("publish-albums", "Publish albums by id.", func(e *catalog.Engine, ctx context.Context, ids []int64) (int64, error) {
			return e.SetAlbumStatus(ctx, ids, model.AlbumPublished)
		}),
		statusCommand("unpublish-albums", "Unpublish albums by id.", func(e *catalog.Engine, ctx context.Context, ids []int64) (int64, error) {
			return e.SetAlbumStatus(ctx, ids, model.AlbumUnreleased)
		}),
		statusCommand("confirm-artists", "Confirm artists by id.", func(e *catalog.Engine, ctx context.Context, ids []int64) (int64, error) {
			return e.SetArtistConfirmed(ctx, ids, model.ArtistConfirmed)
		}),
		statusCommand("unconfirm-artists", "Revoke artist confirmation by id.", func(e *catalog.Engine, ctx context.Context, ids []int64) (int64, error) {
			return e.SetArtistConfirmed(ctx, ids, model.ArtistUnconfirmed)
		}),
	)
	rootCmd.AddCommand(adminCmd)
}

func statusCommand(use, short string, apply func(*catalog.Engine, context.Context, []int64) (int64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ids, err := parseIDs(args)
			if err != nil {
				log.Fatalf("bad ids: %v", err)
			}

			cfg, cleanup, err := setup()
			if err != nil {
				log.Fatalf("setup failed: %v", err)
			}
			defer cleanup()

			engine, err := newEngine(cfg, false)
			if err != nil {
				log.Fatalf("engine setup failed: %v", err)
			}

			affected, err := apply(engine, cmd.Context(), ids)
			if err != nil {
				log.Fatalf("%s failed: %v", use, err)
			}
			fmt.Printf("%s: %d rows affected\n", use, affected)
		},
	}
}

// parseIDs accepts ids as separate arguments or comma-separated lists.
func parseIDs(args []string) ([]int64, error) {
	var ids []int64
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid id %q", part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
