package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marks-cli/internal/adapters/driven/auth"
	"github.com/custodia-labs/marks-cli/internal/adapters/driven/export/xlsx"
	"github.com/custodia-labs/marks-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/core/services"
)

func sampleDocument() *domain.Document {
	return &domain.Document{
		Students: []domain.Student{
			{RollNumber: "101", Name: "Alice", Marks: domain.Marks{{Subject: "math", Value: 80}}},
			{RollNumber: "102", Name: "Bob", Marks: domain.Marks{{Subject: "math", Value: 90}, {Subject: "physics", Value: 70}}},
			{RollNumber: "103", Name: "Carol"},
		},
		Status:      domain.StatusEditing,
		LastUpdated: "2024-01-01T00:00:00.000000",
	}
}

// newTestServices installs services backed by memory stores.
// A nil doc starts with no database at all.
func newTestServices(t *testing.T, doc *domain.Document) (*Services, *memory.DocumentStore) {
	t.Helper()

	store := memory.NewDocumentStore()
	if doc != nil {
		var err error
		store, err = memory.NewDocumentStoreWith(doc)
		require.NoError(t, err)
	}

	records := services.NewRecordService(store)
	svc := &Services{
		Records:  records,
		Auth:     services.NewAuthService(domain.DefaultCredentials(), auth.NewPlaintextVerifier()),
		Marks:    services.NewMarksService(records),
		Reports:  services.NewReportService(),
		Settings: services.NewSettingsService(memory.NewConfigStore()),
		Exporter: xlsx.NewExporter(),
	}
	SetServices(svc)
	t.Cleanup(func() {
		SetServices(nil)
		settingsService = nil
	})
	return svc, store
}

// execute runs the root command with args, feeding input on stdin.
// Standard output and standard error share one buffer.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	err := executeWith(t, buf, buf, input, args...)
	return buf.String(), err
}

// executeSplit runs the root command with separate stdout and stderr buffers.
func executeSplit(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	outBuf, errBuf := new(bytes.Buffer), new(bytes.Buffer)
	err = executeWith(t, outBuf, errBuf, "", args...)
	return outBuf.String(), errBuf.String(), err
}

func executeWith(t *testing.T, out, errOut io.Writer, input string, args ...string) error {
	t.Helper()

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
	})

	return rootCmd.Execute()
}

// lines joins input lines with newlines, including a trailing one.
func lines(in ...string) string {
	return strings.Join(in, "\n") + "\n"
}

// resetFlags restores every parsed flag in the tree to its default so one
// test's --help or --json does not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
