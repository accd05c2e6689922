package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go-qr-score/internal/history"
	"go-qr-score/internal/render"
	"go-qr-score/internal/scoring"
	"go-qr-score/internal/service"
)

var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Score a QR document's scannability (reads stdin when no file is given)",
	Long: `Run the full scoring pipeline against an SVG or raster QR document:
decode the original, decode every perturbed variant, measure contrast, and
report the weighted score.

Examples:
  qrscore score qr.svg
  cat qr.svg | qrscore score --format table
  qrscore score qr.png --expected "https://example.com"
  qrscore score qr.svg --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScore,
}

func init() {
	scoreCmd.Flags().Int("render-size", 0, "override base rasterization size in pixels")
	scoreCmd.Flags().String("format", "json", "output format: json or table")
	scoreCmd.Flags().String("expected", "", "verify the decoded payload against this content")
	scoreCmd.Flags().Bool("save", false, "record the result in the score history")
	scoreCmd.Flags().String("source", "", "source label for the history record (defaults to the file name)")
}

func runScore(cmd *cobra.Command, args []string) {
	data, err := readInput(args)
	if err != nil {
		exitScoreError(fmt.Errorf("failed to read input: %w", err))
	}
	if len(data) == 0 {
		fmt.Fprintln(os.Stderr, "No input provided")
		os.Exit(0)
	}

	params := loadParams()
	if size, _ := cmd.Flags().GetInt("render-size"); size > 0 {
		params.RenderSize = size
	}

	var result *scoring.ValidationResult
	if service.LooksLikeSVG(data) {
		result, err = render.ScoreSVG(data, params)
	} else {
		result, err = scoring.Validate(data, params)
	}
	if err != nil {
		exitScoreError(err)
	}

	out := buildOutput(result)

	if save, _ := cmd.Flags().GetBool("save"); save {
		source, _ := cmd.Flags().GetString("source")
		if source == "" && len(args) == 1 {
			source = args[0]
		}
		if source == "" {
			source = "stdin"
		}
		if err := recordScore(cmd, out, source); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to record history: %v\n", err)
		}
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "table" {
		printTable(out)
	} else {
		printJSON(out)
	}

	if expected, _ := cmd.Flags().GetString("expected"); expected != "" && out.Content != expected {
		fmt.Fprintf(os.Stderr, "Content mismatch: expected %q, decoded %q\n", expected, out.Content)
		os.Exit(1)
	}
}

func recordScore(cmd *cobra.Command, out Output, source string) error {
	store, err := history.Open(historyPath())
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(cmd.Context(), history.Entry{
		Source:    source,
		Score:     out.Score,
		Grade:     out.Grade,
		Decodable: out.Decodable,
		Content:   out.Content,
	})
	return err
}
