// Command standings печатает турнирную таблицу по JSON-снимку реестров,
// не поднимая сервер.
//
//	standings table --file data.json [--division Elite]
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/muskiz/beach-handball/models"
	"github.com/muskiz/beach-handball/standings"
)

// snapshot - формат файла: те же JSON-формы, что отдаёт API.
type snapshot struct {
	Teams   []models.Team  `json:"teams"`
	Matches []models.Match `json:"matches"`
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "standings",
		Short:         "Beach handball standings tools",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)
	root.AddCommand(newTableCmd())
	return root
}

func newTableCmd() *cobra.Command {
	var (
		file     string
		division string
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the standings table for a {teams, matches} snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := readSnapshot(file)
			if err != nil {
				return err
			}
			if division != "" {
				div := models.Division(division)
				if !div.Valid() {
					return fmt.Errorf("unknown division %q", division)
				}
				rows := standings.ComputeDivision(snap.Teams, snap.Matches, div)
				return printTable(cmd.OutOrStdout(), div, rows)
			}

			all := standings.ComputeAll(snap.Teams, snap.Matches)
			for i, div := range models.Divisions() {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := printTable(cmd.OutOrStdout(), div, all[div]); err != nil {
					return err
				}
			}

			sum := standings.Summarize(snap.Teams, snap.Matches)
			fmt.Fprintf(cmd.OutOrStdout(), "\ncounted: %d, incomplete: %d, pending: %d\n",
				sum.Counted, sum.Incomplete, sum.Pending)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to JSON snapshot")
	cmd.Flags().StringVarP(&division, "division", "d", "", "Elite, Amateur or Juvenil")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readSnapshot(path string) (*snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	var snap snapshot
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return &snap, nil
}

func printTable(out io.Writer, division models.Division, rows []models.StandingRow) error {
	fmt.Fprintf(out, "%s\n", division)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tTeam\tPJ\tG\tE\tP\tGF\tGC\tDG\tPts\t")
	for i, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%+d\t%d\t\n",
			i+1, row.Name, row.Played, row.Won, row.Drawn, row.Lost,
			row.GoalsFor, row.GoalsAgainst, row.GoalDifference(), row.Points)
	}
	return tw.Flush()
}
