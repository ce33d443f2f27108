package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the leaderboard to a spreadsheet",
	Long: `Write the leaderboard to an Excel workbook with one row per student:
rank, roll number, name, one column per subject and the total.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	if svc.Exporter == nil {
		return errors.New("exporter not configured")
	}

	path := args[0]
	if ext := svc.Exporter.Extension(); !strings.EqualFold(filepath.Ext(path), ext) {
		path += ext
	}

	ctx := cmd.Context()
	sess, err := svc.Records.Open(ctx)
	if err != nil {
		return err
	}
	standings, err := svc.Reports.Leaderboard(ctx, sess)
	if err != nil && !errors.Is(err, domain.ErrNoRecords) {
		return fmt.Errorf("build leaderboard: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := svc.Exporter.Export(ctx, standings, svc.Reports.Subjects(ctx, sess), f); err != nil {
		_ = f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	logger.Info("Exported %d standings to %s", len(standings), path)
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d students to %s\n", len(standings), path)
	return nil
}
