package cmd

import (
	"fmt"

	"media-batchload/feature/filenames"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var validateCmd = &cobra.Command{
	Use:   "validate [paths-file]",
	Short: "List paths whose filenames break the naming convention",
	Long: `Reads one path per line (from the given file or stdin) and prints the
paths whose base name does not follow <collection>-<6 digits>-<4 digits>.<ext>.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	validator, err := filenames.NewValidator(cfg.Filenames.Collections)
	if err != nil {
		return err
	}

	name := "-"
	if len(args) == 1 {
		name = args[0]
	}
	in, err := openInput(name)
	if err != nil {
		return err
	}
	defer in.Close()

	result, err := validator.Scan(in)
	if err != nil {
		return err
	}
	for _, p := range result.Invalid {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}

	l.Info("Filenames validated", zap.Int("checked", result.Checked), zap.Int("invalid", len(result.Invalid)))
	return nil
}
