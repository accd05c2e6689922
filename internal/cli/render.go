package cli

import (
	"bufio"
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"go-qr-score/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Rasterize an SVG document to PNG without scoring",
	Args:  cobra.MaximumNArgs(1),
	Run:   runRender,
}

func init() {
	renderCmd.Flags().Float64P("zoom", "z", 1, "zoom factor for render output (e.g. 20 = 20x)")
	renderCmd.Flags().Int("size", 0, "render to an exact square size instead of zooming")
	renderCmd.Flags().String("out", "", "write PNG to this path instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) {
	data, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
		os.Exit(1)
	}
	if len(data) == 0 {
		fmt.Fprintln(os.Stderr, "No input provided")
		os.Exit(0)
	}

	size, _ := cmd.Flags().GetInt("size")
	zoom, _ := cmd.Flags().GetFloat64("zoom")

	img, err := renderImage(data, size, zoom)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render SVG: %v\n", err)
		os.Exit(1)
	}

	outPath, _ := cmd.Flags().GetString("out")
	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create %s: %v\n", outPath, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	if err := render.EncodePNG(w, img); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write PNG: %v\n", err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write PNG: %v\n", err)
		os.Exit(1)
	}
	if outPath != "" {
		fmt.Fprintf(os.Stderr, "Wrote PNG to %s\n", outPath)
	}
}

func renderImage(data []byte, size int, zoom float64) (image.Image, error) {
	if size > 0 {
		icon, err := render.ParseSVG(data)
		if err != nil {
			return nil, err
		}
		return render.Rasterize(icon, size)
	}
	return render.RasterizeZoom(data, zoom)
}
