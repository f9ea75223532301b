package cli

import (
	"fmt"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
	"github.com/ironsheep/color-tools-mcp/internal/snippet"
	"github.com/ironsheep/color-tools-mcp/internal/suggest"
	"github.com/spf13/cobra"
)

func invalidColorError(input string) error {
	return fmt.Errorf("not a hex color: %q (expected 3 or 6 hex digits, optional #)", input)
}

func newConvertCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <hex>",
		Short: "Show a color as HEX, RGB, HSL, CMYK and HSV",
		Example: `  color-tools-mcp convert 6366f1
  color-tools-mcp convert '#F00' --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, ok := colormodel.Describe(args[0])
			if !ok {
				return invalidColorError(args[0])
			}
			out := cmd.OutOrStdout()
			if flags.jsonOutput {
				return printJSON(out, view)
			}
			for _, f := range view.Formats {
				fmt.Fprintf(out, "%-5s %s\n", f.Label, f.Value)
			}
			fmt.Fprintf(out, "%-5s %s\n", "HSV", view.HSV)
			fmt.Fprintf(out, "%-5s %s\n", "TEXT", view.Contrast)
			return nil
		},
	}
}

func newSuggestCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <hex>",
		Short: "Suggest tints, shades and harmonies for a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, ok := suggest.Generate(args[0])
			if !ok {
				return invalidColorError(args[0])
			}
			out := cmd.OutOrStdout()
			if flags.jsonOutput {
				return printJSON(out, set)
			}
			rows := []struct {
				label  string
				colors []string
			}{
				{"tints", set.Tints},
				{"shades", set.Shades},
				{"analogous", set.Analogous},
				{"triadic", set.Triadic},
				{"split", set.SplitComplementary},
				{"complement", []string{set.Complementary}},
			}
			for _, r := range rows {
				fmt.Fprintf(out, "%-10s %s\n", r.label, strings.Join(r.colors, " "))
			}
			return nil
		},
	}
}

func newSnippetCmd(flags *globalFlags) *cobra.Command {
	var framework, property, format string

	cmd := &cobra.Command{
		Use:   "snippet <hex>",
		Short: "Print a CSS declaration or Tailwind class for a color",
		Example: `  color-tools-mcp snippet 6366f1                      # background-color: #6366f1;
  color-tools-mcp snippet 6366f1 -p text -f rgb      # color: rgb(99, 102, 241);
  color-tools-mcp snippet 6366f1 --framework tailwind # bg-[#6366f1]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fw, err := snippet.ParseFramework(framework)
			if err != nil {
				return err
			}
			prop, err := snippet.ParseProperty(property)
			if err != nil {
				return err
			}
			fmtValue, err := snippet.ParseFormat(format)
			if err != nil {
				return err
			}
			hex, ok := colormodel.NormalizeHex(args[0])
			if !ok {
				return invalidColorError(args[0])
			}

			s := snippet.Generate(hex, fw, prop, fmtValue)
			if flags.jsonOutput {
				return printJSON(cmd.OutOrStdout(), map[string]string{"snippet": s})
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().StringVar(&framework, "framework", "css", "snippet syntax (css, tailwind)")
	cmd.Flags().StringVarP(&property, "property", "p", "bg", "style property (bg, text, border)")
	cmd.Flags().StringVarP(&format, "format", "f", "hex", "value format (hex, rgb, hsl)")
	return cmd
}

func newCompareCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <hex> <hex>",
		Short: "Compare two colors for contrast and difference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, ok := colormodel.Compare(args[0], args[1])
			if !ok {
				return fmt.Errorf("not a pair of hex colors: %q, %q", args[0], args[1])
			}
			out := cmd.OutOrStdout()
			if flags.jsonOutput {
				return printJSON(out, cmp)
			}
			fmt.Fprintf(out, "contrast  %.2f:1 (AA %s, AA large %s, AAA %s)\n",
				cmp.ContrastRatio, passFail(cmp.PassesAA), passFail(cmp.PassesAALarge), passFail(cmp.PassesAAA))
			fmt.Fprintf(out, "delta E   %.2f\n", cmp.DeltaE)
			fmt.Fprintf(out, "channels  %.2f (similar: %t)\n", cmp.AverageChannelDiff, cmp.Similar)
			return nil
		},
	}
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
