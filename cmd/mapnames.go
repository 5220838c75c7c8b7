package cmd

import (
	"bytes"
	"strconv"

	"media-batchload/feature/filenames"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var mapNamesPrefix string

var mapNamesCmd = &cobra.Command{
	Use:   "map-names [autonumber-base]",
	Short: "Assign convention names to streaming masters",
	Long: `Reads a CSV with streaming_master, umdm and umam columns from stdin and
writes umdm, umam, old_name_base, new_name_base to stdout. Every umdm gets
an autonumber counted from the base (default filenames.autonumber_base),
and its files are numbered from 1.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMapNames,
}

func init() {
	mapNamesCmd.Flags().StringVar(&mapNamesPrefix, "prefix", "", "Collection code for new names (default filenames.autonumber_prefix)")
	RootCmd.AddCommand(mapNamesCmd)
}

func runMapNames(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	base := cfg.Filenames.AutonumberBase
	if len(args) == 1 {
		if base, err = strconv.Atoi(args[0]); err != nil {
			return err
		}
	}
	prefix := cfg.Filenames.AutonumberPrefix
	if mapNamesPrefix != "" {
		prefix = mapNamesPrefix
	}

	var out bytes.Buffer
	n, err := filenames.NewMapper(prefix, base).MapNames(cmd.InOrStdin(), &out)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(out.Bytes()); err != nil {
		return err
	}

	l.Info("Names mapped", zap.Int("rows", n), zap.Int("base", base), zap.String("prefix", prefix))
	return nil
}
