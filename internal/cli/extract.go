package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/snippet"
	"github.com/spf13/cobra"
)

type extractFlags struct {
	count   int
	region  string
	format  string
	preview bool
}

func newExtractCmd(flags *globalFlags) *cobra.Command {
	ef := &extractFlags{}

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract the dominant colors of an image",
		Long: `Extract the most frequent colors of an image, most frequent first.

The image is downscaled to a small working copy, sampled on a fixed stride,
and each channel is rounded to a coarse bucket so near-identical shades are
counted together. Pixels that are mostly transparent are ignored.

Supported image formats: PNG, JPEG, GIF, WebP

Examples:
  # Top 5 colors with their share of the image
  color-tools-mcp extract photo.jpg

  # Top 8 colors of the top-left 100x100 pixels as a stylesheet
  color-tools-mcp extract -c 8 --region 0,0,100,100 --format css photo.png

  # Colored swatches in the terminal
  color-tools-mcp extract --preview photo.webp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, flags, ef, args[0])
		},
	}

	cmd.Flags().IntVarP(&ef.count, "count", "c", 0, "number of colors (default: palette size)")
	cmd.Flags().StringVar(&ef.region, "region", "", "limit to x1,y1,x2,y2 (end exclusive)")
	cmd.Flags().StringVarP(&ef.format, "format", "f", "hex", "output format (hex, css)")
	cmd.Flags().BoolVar(&ef.preview, "preview", false, "show color swatches in the terminal")
	return cmd
}

func runExtract(cmd *cobra.Command, flags *globalFlags, ef *extractFlags, path string) error {
	cfg, err := loadConfig(cmd.Flags(), flags)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, cmd.ErrOrStderr())

	region, err := parseRegion(ef.region)
	if err != nil {
		return err
	}
	count := ef.count
	if count == 0 {
		count = cfg.PaletteSize
	}
	if count < 0 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	img, err := imaging.NewImageCache().Load(path)
	if err != nil {
		return err
	}
	logger.Debug("image loaded", "path", path, "bounds", img.Bounds())

	extractor, err := imaging.NewExtractor(cfg.ExtractOptions())
	if err != nil {
		return err
	}
	result, err := extractor.DominantColors(img, count, region)
	if err != nil {
		return err
	}
	logger.Debug("colors extracted", "colors", len(result.Colors), "sampled", result.SampledPixels)

	out := cmd.OutOrStdout()
	if flags.jsonOutput {
		return printJSON(out, result)
	}

	switch ef.format {
	case "hex":
		for _, c := range result.Colors {
			fmt.Fprintf(out, "%s  %6.2f%%", c.Hex, c.Percentage)
			if ef.preview {
				fmt.Fprintf(out, "  %s", swatchPreview(c.RGB))
			}
			fmt.Fprintln(out)
		}
	case "css":
		fmt.Fprintln(out, snippet.ExportCSS(result.Hexes()))
	default:
		return fmt.Errorf("unknown format: %q (must be 'hex' or 'css')", ef.format)
	}
	return nil
}

// parseRegion reads "x1,y1,x2,y2". An empty string means the whole image.
func parseRegion(s string) (*imaging.Region, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("region must be x1,y1,x2,y2, got %q", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid region coordinate %q: %w", p, err)
		}
		v[i] = n
	}
	return &imaging.Region{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

// swatchPreview renders the hex of c on a background of c. Color output is
// dropped automatically when stdout is not a terminal.
func swatchPreview(c colormodel.RGB) string {
	fg, _ := colormodel.ParseHex(colormodel.ContrastColor(c))
	return color.BgRGB(int(c.R), int(c.G), int(c.B)).
		AddRGB(int(fg.R), int(fg.G), int(fg.B)).
		Sprint(" " + c.Hex() + " ")
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
