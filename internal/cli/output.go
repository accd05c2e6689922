package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"

	"go-qr-score/internal/scoring"
)

// Output is the CLI result payload.
type Output struct {
	Score           int             `json:"score"`
	Grade           string          `json:"grade"`
	Decodable       bool            `json:"decodable"`
	Content         string          `json:"content,omitempty"`
	Results         map[string]bool `json:"results"`
	ContrastRatio   int             `json:"contrast_ratio"`
	ErrorCorrection string          `json:"error_correction,omitempty"`
}

type errorOutput struct {
	Score     int    `json:"score"`
	Grade     string `json:"grade"`
	Decodable bool   `json:"decodable"`
	Error     string `json:"error"`
}

var (
	passColor  = color.New(color.FgGreen)
	failColor  = color.New(color.FgRed)
	gradeColor = map[string]*color.Color{
		"A": color.New(color.FgGreen, color.Bold),
		"B": color.New(color.FgGreen),
		"C": color.New(color.FgYellow),
		"D": color.New(color.FgRed),
		"F": color.New(color.FgRed, color.Bold),
	}
)

func buildOutput(r *scoring.ValidationResult) Output {
	out := Output{
		Score:         r.Score,
		Grade:         scoring.GradeFromScore(r.Score),
		Decodable:     r.Decodable,
		Content:       r.Content,
		Results:       r.StressResults.Tests,
		ContrastRatio: int(r.StressResults.ContrastRatio*100 + 0.5),
	}
	if r.Metadata != nil {
		out.ErrorCorrection = string(r.Metadata.ErrorCorrection)
	}
	return out
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write JSON: %v\n", err)
		os.Exit(1)
	}
}

// printTable renders the stress results as a human-readable table with a
// colored grade summary line.
func printTable(out Output) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Stress Test", "Result"})

	for _, name := range scoring.VariantNames() {
		passed, ok := out.Results[name]
		if !ok {
			continue
		}
		result := failColor.Sprint("FAIL")
		if passed {
			result = passColor.Sprint("PASS")
		}
		table.Append([]string{name, result})
	}
	table.Render()

	grade := out.Grade
	if c, ok := gradeColor[grade]; ok {
		grade = c.Sprint(grade)
	}
	fmt.Printf("Score: %d/100  Grade: %s  Contrast: %d%%\n", out.Score, grade, out.ContrastRatio)
	if out.Content != "" {
		fmt.Printf("Content: %s\n", out.Content)
	}
	if out.ErrorCorrection != "" {
		fmt.Printf("Error correction: %s\n", out.ErrorCorrection)
	}
}

// exitScoreError emits the failure payload (score 0, grade F) and exits
// non-zero. A failed run never presents a partial success.
func exitScoreError(err error) {
	printJSON(errorOutput{
		Score:     0,
		Grade:     "F",
		Decodable: false,
		Error:     err.Error(),
	})
	os.Exit(1)
}

// historyPath resolves the sqlite history location: history_db from config,
// else ~/.qrscore.db.
func historyPath() string {
	if p := viper.GetString("history_db"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".qrscore.db"
	}
	return filepath.Join(home, ".qrscore.db")
}
