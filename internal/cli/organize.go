package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tidydate/internal/config"
	"github.com/danieljhkim/tidydate/internal/engine"
)

var (
	organizeOutput     string
	organizeDateSource string
	organizeDepth      int
	organizeConflict   string
	organizeRecursive  bool
	organizeHidden     bool
	organizeInclude    []string
	organizeExclude    []string
	organizeCleanEmpty bool
	organizeFailFast   bool
	organizeDryRun     bool
	organizeYes        bool
	organizeConfig     string
)

var organizeCmd = &cobra.Command{
	Use:   "organize [directory]",
	Short: "Move files into date-based directories",
	Long: `Organize moves the files in a directory into a date hierarchy under
the output directory (default: <directory>/organized).

Each file is bucketed by its creation or modification date, for example
2026/202601/20260115/ at the default depth of 3. The plan is finalized
before any file is touched; use --dry-run to preview it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := "."
		if len(args) > 0 {
			source = args[0]
		}

		req, err := buildRequest(cmd, source)
		if err != nil {
			return err
		}

		result, err := newEngine().Organize(req)
		if err != nil {
			if errors.Is(err, engine.ErrAborted) {
				PrintWarning("Aborted.")
				return nil
			}
			return err
		}

		if jsonOutput {
			return outputJSON(buildReport(result))
		}
		if result.DryRun {
			renderDryRun(result)
			return nil
		}
		renderSummary(result)
		return nil
	},
}

// buildRequest merges file-config defaults with flags. Flags that were set
// explicitly always win over file values.
func buildRequest(cmd *cobra.Command, source string) (*engine.OrganizeRequest, error) {
	path := organizeConfig
	if path == "" {
		var err error
		path, err = config.DefaultFilePath()
		if err != nil {
			return nil, err
		}
	}
	fileCfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	dateSource := organizeDateSource
	if !cmd.Flags().Changed("date-source") && fileCfg.DateSource != "" {
		dateSource = fileCfg.DateSource
	}
	depth := organizeDepth
	if !cmd.Flags().Changed("depth") && fileCfg.Depth != 0 {
		depth = fileCfg.Depth
	}
	conflict := organizeConflict
	if !cmd.Flags().Changed("on-conflict") && fileCfg.OnConflict != "" {
		conflict = fileCfg.OnConflict
	}
	recursive := organizeRecursive
	if !cmd.Flags().Changed("recursive") && fileCfg.Recursive {
		recursive = true
	}
	hidden := organizeHidden
	if !cmd.Flags().Changed("hidden") && fileCfg.Hidden {
		hidden = true
	}
	cleanEmpty := organizeCleanEmpty
	if !cmd.Flags().Changed("clean-empty") && fileCfg.CleanEmpty {
		cleanEmpty = true
	}
	include := organizeInclude
	if !cmd.Flags().Changed("include") && len(fileCfg.Include) > 0 {
		include = fileCfg.Include
	}
	exclude := organizeExclude
	if !cmd.Flags().Changed("exclude") && len(fileCfg.Exclude) > 0 {
		exclude = fileCfg.Exclude
	}

	ds, err := config.ParseDateSource(dateSource)
	if err != nil {
		return nil, err
	}
	cm, err := config.ParseConflictMode(conflict)
	if err != nil {
		return nil, err
	}

	return &engine.OrganizeRequest{
		Source:        source,
		Output:        organizeOutput,
		DateSource:    ds,
		Depth:         depth,
		Conflict:      cm,
		Recursive:     recursive,
		IncludeHidden: hidden,
		Include:       include,
		Exclude:       exclude,
		CleanEmpty:    cleanEmpty,
		FailFast:      organizeFailFast,
		DryRun:        organizeDryRun,
		AssumeYes:     organizeYes,
		Interactive:   stdinIsTerminal(),
	}, nil
}

func renderDryRun(result *engine.OrganizeResult) {
	PrintSection("Dry Run")
	if len(result.Plan.Moves) == 0 {
		PrintEmptyState("Nothing to organize.")
		return
	}

	rows := make([][]string, 0, len(result.Plan.Moves))
	for _, m := range result.Plan.Moves {
		rows = append(rows, []string{
			relToRoot(result.Context.SourceRoot, m.Source),
			relToRoot(result.Context.OutputRoot, m.Target),
			m.Action.String(),
		})
	}
	PrintInfo(renderMovesTable([]string{"Source", "Target", "Action"}, rows))
	fmt.Println()
	PrintInfo(fmt.Sprintf("Would move %s into %s",
		PrintCount(result.Plan.PendingCount(), "file", "files"), result.Context.OutputRoot))
	if result.Plan.AlreadyPlaced > 0 {
		PrintDim(fmt.Sprintf("%s already in place", PrintCount(result.Plan.AlreadyPlaced, "file", "files")))
	}
}

func renderSummary(result *engine.OrganizeResult) {
	PrintSection("Summary")
	PrintSuccess(fmt.Sprintf("Moved %s in %s",
		PrintCount(result.Summary.Moved, "file", "files"),
		result.Summary.Elapsed.Round(time.Millisecond)))
	PrintLabelValue("Output", result.Context.OutputRoot)
	if result.Summary.Skipped > 0 {
		PrintLabelValue("Skipped", fmt.Sprintf("%d", result.Summary.Skipped))
	}
	if result.Summary.SymlinksSkipped > 0 {
		PrintLabelValue("Symlinks skipped", fmt.Sprintf("%d", result.Summary.SymlinksSkipped))
	}
	if result.Summary.DirsCreated > 0 {
		PrintLabelValue("Directories created", fmt.Sprintf("%d", result.Summary.DirsCreated))
	}
	if result.Summary.DirsRemoved > 0 {
		PrintLabelValue("Directories removed", fmt.Sprintf("%d", result.Summary.DirsRemoved))
	}
	if result.Summary.Errors > 0 {
		PrintWarning(fmt.Sprintf("%s failed", PrintCount(result.Summary.Errors, "file", "files")))
	}
}

// relToRoot shortens path for display when it sits under root.
func relToRoot(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || len(rel) >= len(path) {
		return path
	}
	return rel
}

type moveReport struct {
	Source string `json:"source"`
	Target string `json:"target,omitempty"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type runReport struct {
	DryRun          bool         `json:"dry_run"`
	Source          string       `json:"source"`
	Output          string       `json:"output"`
	Moves           []moveReport `json:"moves"`
	Moved           int          `json:"moved"`
	Skipped         int          `json:"skipped"`
	Errors          int          `json:"errors"`
	SymlinksSkipped int          `json:"symlinks_skipped"`
	DirsCreated     int          `json:"dirs_created"`
	DirsRemoved     int          `json:"dirs_removed"`
	ElapsedMs       int64        `json:"elapsed_ms"`
}

func buildReport(result *engine.OrganizeResult) *runReport {
	report := &runReport{
		DryRun:          result.DryRun,
		Source:          result.Context.SourceRoot,
		Output:          result.Context.OutputRoot,
		Moves:           make([]moveReport, 0, len(result.Plan.Moves)),
		Moved:           result.Summary.Moved,
		Skipped:         result.Summary.Skipped,
		Errors:          result.Summary.Errors,
		SymlinksSkipped: result.Summary.SymlinksSkipped,
		DirsCreated:     result.Summary.DirsCreated,
		DirsRemoved:     result.Summary.DirsRemoved,
		ElapsedMs:       result.Summary.Elapsed.Milliseconds(),
	}

	if result.DryRun {
		for _, m := range result.Plan.Moves {
			report.Moves = append(report.Moves, moveReport{
				Source: m.Source,
				Target: m.Target,
				Status: "planned " + m.Action.String(),
				Reason: m.Reason,
			})
		}
		return report
	}

	for _, ex := range result.Executed {
		report.Moves = append(report.Moves, moveReport{
			Source: ex.Source,
			Target: ex.Target,
			Status: ex.Outcome.String(),
			Reason: ex.Reason,
		})
	}
	return report
}

func init() {
	organizeCmd.Flags().StringVarP(&organizeOutput, "output", "o", "", "Output directory (default: <directory>/organized)")
	organizeCmd.Flags().StringVar(&organizeDateSource, "date-source", "created", "Timestamp to bucket by (created or modified)")
	organizeCmd.Flags().IntVarP(&organizeDepth, "depth", "d", config.MaxDepth, "Date hierarchy depth (1-3)")
	organizeCmd.Flags().StringVar(&organizeConflict, "on-conflict", "rename", "Conflict handling (rename, skip, overwrite or ask)")
	organizeCmd.Flags().BoolVarP(&organizeRecursive, "recursive", "r", false, "Descend into subdirectories")
	organizeCmd.Flags().BoolVar(&organizeHidden, "hidden", false, "Include hidden files")
	organizeCmd.Flags().StringSliceVar(&organizeInclude, "include", nil, "Only process files matching these glob patterns")
	organizeCmd.Flags().StringSliceVar(&organizeExclude, "exclude", nil, "Skip files matching these glob patterns")
	organizeCmd.Flags().BoolVar(&organizeCleanEmpty, "clean-empty", false, "Remove emptied source directories afterwards")
	organizeCmd.Flags().BoolVar(&organizeFailFast, "fail-fast", false, "Abort on the first per-file error")
	organizeCmd.Flags().BoolVar(&organizeDryRun, "dry-run", false, "Show the plan without moving anything")
	organizeCmd.Flags().BoolVarP(&organizeYes, "yes", "y", false, "Skip the confirmation prompt")
	organizeCmd.Flags().StringVar(&organizeConfig, "config", "", "Config file path (default: ~/.config/tidydate/config.toml)")
}
