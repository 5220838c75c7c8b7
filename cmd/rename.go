package cmd

import (
	"fmt"

	"media-batchload/feature/filenames"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for rename command
	renameTargets []string
	renameDryRun  bool
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename files according to a name mapping",
	Long: `Reads a mapping CSV (old_name_base, new_name_base) from stdin and, for every
-D dir=.ext target, moves dir/<old>.ext to dir/<new>.ext when it exists.

Examples:
  map-names < masters.csv > mapping.csv
  rename -D /data/masters=.mov -D /data/access=.mp4 --dry-run < mapping.csv`,
	RunE: runRename,
}

func init() {
	renameCmd.Flags().StringArrayVarP(&renameTargets, "directory", "D", nil, "Target directory and extension as dir=.ext (repeatable)")
	renameCmd.Flags().BoolVar(&renameDryRun, "dry-run", false, "Report the moves without renaming")
	_ = renameCmd.MarkFlagRequired("directory")

	RootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	_, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	targets := make([]filenames.Target, 0, len(renameTargets))
	for _, t := range renameTargets {
		target, err := filenames.ParseTarget(t)
		if err != nil {
			return err
		}
		targets = append(targets, target)
	}

	moves, err := filenames.NewRenamer(afero.NewOsFs(), renameDryRun, l).Rename(cmd.InOrStdin(), targets)
	renamed := 0
	for _, m := range moves {
		fmt.Fprintln(cmd.OutOrStdout(), m.From, m.To)
		if m.Renamed {
			renamed++
		}
	}
	if err != nil {
		return err
	}

	l.Info("Rename complete", zap.Int("planned", len(moves)), zap.Int("renamed", renamed), zap.Bool("dry_run", renameDryRun))
	return nil
}
