package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go-qr-score/internal/decoder"
	"go-qr-score/internal/render"
	"go-qr-score/internal/service"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a QR document without stress testing",
	Args:  cobra.MaximumNArgs(1),
	Run:   runDecode,
}

func runDecode(_ *cobra.Command, args []string) {
	data, err := readInput(args)
	if err != nil {
		exitScoreError(fmt.Errorf("failed to read input: %w", err))
	}
	if len(data) == 0 {
		fmt.Fprintln(os.Stderr, "No input provided")
		os.Exit(0)
	}

	var result *decoder.Result
	if service.LooksLikeSVG(data) {
		params := loadParams()
		icon, err := render.ParseSVG(data)
		if err != nil {
			exitScoreError(err)
		}
		size := params.RenderSize
		if native := render.NativeSize(icon); native > size {
			size = native
		}
		img, err := render.Rasterize(icon, size)
		if err != nil {
			exitScoreError(err)
		}
		result, err = decoder.TryDecode(img)
		if err != nil {
			exitScoreError(err)
		}
	} else {
		result, err = decoder.DecodeBytes(data)
		if err != nil {
			exitScoreError(err)
		}
	}

	printJSON(result)
}
