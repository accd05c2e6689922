package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"go-qr-score/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently recorded scores",
	Args:  cobra.NoArgs,
	Run:   runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of entries to show")
}

func runHistory(cmd *cobra.Command, _ []string) {
	store, err := history.Open(historyPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read history: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("No recorded scores yet. Use `qrscore score --save` to record one.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"When", "Source", "Score", "Grade", "Decodable"})
	for _, e := range entries {
		grade := e.Grade
		if c, ok := gradeColor[grade]; ok {
			grade = c.Sprint(grade)
		}
		table.Append([]string{
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Source,
			fmt.Sprintf("%d", e.Score),
			grade,
			fmt.Sprintf("%t", e.Decodable),
		})
	}
	table.Render()
}
