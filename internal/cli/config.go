package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tidydate/internal/config"
)

var configPath string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the defaults file location and contents",
	Long: `Config shows where tidydate looks for its TOML defaults file and the
defaults currently set in it. The TIDYDATE_CONFIG environment variable
overrides the default location.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			path, err = config.DefaultFilePath()
			if err != nil {
				return err
			}
		}

		cfg, err := config.LoadFile(path)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]any{
				"path":   path,
				"config": cfg,
			})
		}

		PrintSection("Config")
		PrintLabelValue("Path", path)

		set := false
		if cfg.DateSource != "" {
			PrintLabelValue("date_source", cfg.DateSource)
			set = true
		}
		if cfg.Depth != 0 {
			PrintLabelValue("depth", fmt.Sprintf("%d", cfg.Depth))
			set = true
		}
		if cfg.OnConflict != "" {
			PrintLabelValue("on_conflict", cfg.OnConflict)
			set = true
		}
		if cfg.Hidden {
			PrintLabelValue("hidden", "true")
			set = true
		}
		if cfg.Recursive {
			PrintLabelValue("recursive", "true")
			set = true
		}
		if cfg.CleanEmpty {
			PrintLabelValue("clean_empty", "true")
			set = true
		}
		if len(cfg.Include) > 0 {
			PrintLabelValue("include", strings.Join(cfg.Include, ", "))
			set = true
		}
		if len(cfg.Exclude) > 0 {
			PrintLabelValue("exclude", strings.Join(cfg.Exclude, ", "))
			set = true
		}
		if !set {
			PrintEmptyState("No defaults set; flags and built-in defaults apply.")
		}
		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&configPath, "config", "", "Config file path (default: ~/.config/tidydate/config.toml)")
}
