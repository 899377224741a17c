package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vikawood123/web.resume/internal/app"
)

func buildCmd(opts *rootOptions) *cobra.Command {
	var (
		output   string
		dataPath string
		upload   bool
		compress bool
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Load the data, render the page and write it out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Output = output
			}
			if dataPath != "" {
				cfg.DataPath = dataPath
			}
			if compress {
				cfg.Compress = true
			}

			store, err := openPrefs(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			start := time.Now()
			files, err := app.New(cfg, store).Run(ctx, upload)
			if err != nil {
				return err
			}
			log.Printf("build finished in %s", time.Since(start))

			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output html path (overrides config)")
	cmd.Flags().StringVar(&dataPath, "data", "", "data path prefix: directory or base URL (overrides config)")
	cmd.Flags().BoolVar(&upload, "sftp", false, "upload the generated files via SFTP")
	cmd.Flags().BoolVar(&compress, "compress", false, "also write a brotli-compressed copy")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall build timeout")
	return cmd
}
