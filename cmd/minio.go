package cmd

import (
	"context"
	"fmt"
	"log"

	"mlmusic/config"
	"mlmusic/storage"

	"github.com/spf13/cobra"
)

var minioPrefix string

var minioCmd = &cobra.Command{
	Use:   "minio",
	Short: "Check the media store and list stored objects.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		fmt.Printf("MinIO: %s, bucket %s\n", cfg.MinioEndpoint, cfg.MinioBucket)

		store, err := storage.NewMediaStore(cfg)
		if err != nil {
			log.Fatalf("cannot connect to MinIO: %v", err)
		}

		objects, err := store.List(context.Background(), minioPrefix)
		if err != nil {
			log.Fatalf("listing failed: %v", err)
		}

		for _, object := range objects {
			fmt.Println(object)
		}
		fmt.Printf("%d objects\n", len(objects))
	},
}

func init() {
	minioCmd.Flags().StringVar(&minioPrefix, "prefix", "", "only list objects under this prefix")
	rootCmd.AddCommand(minioCmd)
}
