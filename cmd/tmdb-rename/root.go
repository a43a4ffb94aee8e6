package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	flagExecute       bool
	flagSingle        bool
	flagNoInteractive bool
	flagToken         string
	flagConfig        string
	flagLogLevel      string
)

var rootCmd = &cobra.Command{
	Use:   "tmdb-rename <path>...",
	Short: "Rename media folders to canonical TMDB/IMDb form",
	Long: `tmdb-rename - media folder identification and renaming

Scans library folders, identifies each movie or series against TMDB and
renames folders (and their files) to "Title (Year) [imdbid-ttXXXXXXX]".

Without -x everything runs as a dry run; nothing on disk changes.

The TMDB API read access token comes from -t, the TMDB_ACCESS_TOKEN or
TMDB_API_TOKEN environment variable, or ~/.tmdb_token.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return run(cmd.Context(), args)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&flagExecute, "execute", "x", false, "Perform the renames (default is dry run)")
	rootCmd.Flags().BoolVarP(&flagSingle, "single", "s", false, "Treat each path as one folder instead of a parent of folders")
	rootCmd.Flags().BoolVarP(&flagNoInteractive, "no-interactive", "n", false, "Run without prompts (automatic matches only)")
	rootCmd.Flags().StringVarP(&flagToken, "token", "t", "", "TMDB access token")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("tmdb-rename {{.Version}}\n")
}
