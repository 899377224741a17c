package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/Vikawood123/web.resume/internal/config"
	"github.com/Vikawood123/web.resume/internal/prefs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	cfgFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "resume",
		Short:         "Build the resume page from courses.json and projects.json",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "resume.yml", "config file path")

	rootCmd.AddCommand(buildCmd(opts))
	rootCmd.AddCommand(themeCmd(opts))
	rootCmd.AddCommand(configCmd(opts))
	return rootCmd
}

func (o *rootOptions) load() (*config.Config, error) {
	return config.Load(o.cfgFile)
}

func openPrefs(cfg *config.Config) (*prefs.Store, error) {
	return prefs.Open(cfg.PrefsPath)
}
