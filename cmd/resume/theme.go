package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vikawood123/web.resume/internal/prefs"
)

func themeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the persisted page theme",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTheme(cmd, opts, func(kv prefs.KV, def prefs.Theme) (prefs.Theme, error) {
				return prefs.LoadTheme(cmd.Context(), kv, def)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTheme(cmd, opts, func(kv prefs.KV, def prefs.Theme) (prefs.Theme, error) {
				return prefs.ToggleTheme(cmd.Context(), kv, def)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set light|dark",
		Short:     "Store a specific theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(prefs.Light), string(prefs.Dark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := prefs.ParseTheme(args[0])
			if !ok {
				return fmt.Errorf("unknown theme %q (want light or dark)", args[0])
			}
			return withTheme(cmd, opts, func(kv prefs.KV, _ prefs.Theme) (prefs.Theme, error) {
				return t, prefs.SaveTheme(cmd.Context(), kv, t)
			})
		},
	})

	return cmd
}

func withTheme(cmd *cobra.Command, opts *rootOptions, fn func(prefs.KV, prefs.Theme) (prefs.Theme, error)) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	store, err := openPrefs(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	t, err := fn(store, cfg.Theme())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", t.Icon(), t)
	return nil
}
