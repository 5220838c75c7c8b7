package cmd

import (
	"os"
	"path/filepath"

	"media-batchload/feature/verify"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <batch.csv>",
	Short: "Check a loaded batch against the media repository",
	Long: `Reads a batch manifest and lists, for each row, the media objects in the
repository's search index that carry the row's pid, with their URLs and
part counts.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	RootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	svc := verify.NewService(verify.NewSolrIndex(cfg.Index), l)
	report, err := svc.Verify(filepath.Base(args[0]), f)
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout())
}
