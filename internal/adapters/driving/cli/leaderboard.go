package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
)

var leaderboardJSON bool

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the public marks view",
	Long: `Print every student ranked by total marks, highest first.
Students with equal totals keep their order in the database.`,
	Args: cobra.NoArgs,
	RunE: runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().BoolVar(&leaderboardJSON, "json", false, "output standings as JSON")
	rootCmd.AddCommand(leaderboardCmd)
}

// standingJSON is the --json shape of one leaderboard row.
type standingJSON struct {
	Rank       int          `json:"rank"`
	RollNumber string       `json:"roll_number"`
	Name       string       `json:"name"`
	Marks      domain.Marks `json:"marks"`
	Total      int          `json:"total"`
}

func runLeaderboard(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	sess, err := svc.Records.Open(cmd.Context())
	if err != nil {
		return err
	}

	standings, err := svc.Reports.Leaderboard(cmd.Context(), sess)
	if errors.Is(err, domain.ErrNoRecords) {
		if leaderboardJSON {
			fmt.Fprintln(cmd.OutOrStdout(), "[]")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), msgNoRecords)
		return nil
	}
	if err != nil {
		return fmt.Errorf("build leaderboard: %w", err)
	}

	if leaderboardJSON {
		return outputLeaderboardJSON(cmd, standings)
	}
	renderLeaderboard(cmd.OutOrStdout(), sess.Document.LastUpdated, standings)
	return nil
}

func outputLeaderboardJSON(cmd *cobra.Command, standings []domain.Standing) error {
	rows := make([]standingJSON, 0, len(standings))
	for _, st := range standings {
		rows = append(rows, standingJSON{
			Rank:       st.Rank,
			RollNumber: st.Student.RollNumber,
			Name:       st.Student.Name,
			Marks:      st.Student.Marks,
			Total:      st.Total,
		})
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal standings: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
