package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/maze/carve"
	"github.com/matzehuels/mazegen/pkg/pipeline"
	"github.com/matzehuels/mazegen/pkg/render"
)

// defaultBase names output files when --output is omitted and the output
// cannot go to stdout.
const defaultBase = "maze"

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	height   int
	width    int
	strategy string
	seed     uint64
	minCycle int
	steps    int
	start    int
	formats  string
	output   string
	cellSize float64
	animate  time.Duration
	detailed bool
	order    bool
	stats    bool
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Carve a maze and render it",
		Long: `Carve a maze and render it in one or more formats.

Without --output a single text format (txt, svg, json, dot) is written to
stdout. Otherwise files are named after --output, or "maze" when it is
omitted, with the format's extension.`,
		Example: `  mazegen generate -H 10 -W 20
  mazegen generate -s dfs -f svg,json -o out/maze --seed 7
  mazegen generate -f png -o maze.png --stats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := c.generateOptions(cmd, &opts)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), cmd.OutOrStdout(), popts, &opts)
		},
	}

	def := c.config
	f := cmd.Flags()
	f.IntVarP(&opts.height, "height", "H", def.Height, "maze height in cells")
	f.IntVarP(&opts.width, "width", "W", def.Width, "maze width in cells")
	f.StringVarP(&opts.strategy, "strategy", "s", def.Strategy, "carve strategy: "+strings.Join(carve.Names(), ", "))
	f.Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	f.IntVar(&opts.minCycle, "min-cycle", def.MinCycle, "minimum depth difference for braided loops")
	f.IntVar(&opts.steps, "steps", 0, "step budget for the walk strategy (0 = cells²)")
	f.IntVar(&opts.start, "start", 0, "start cell index")
	f.StringVarP(&opts.formats, "format", "f", def.Format, "output format(s): "+strings.Join(render.Formats(), ", ")+" (comma-separated)")
	f.StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	f.Float64Var(&opts.cellSize, "cell", def.CellSize, "SVG cell size")
	f.DurationVar(&opts.animate, "animate", 0, "SVG reveal delay per cell in visit order (0 = static)")
	f.BoolVar(&opts.detailed, "detailed", false, "label DOT/PNG nodes with coordinates")
	f.BoolVar(&opts.order, "order", false, "include the visit order in JSON output")
	f.BoolVar(&opts.stats, "stats", false, "print maze statistics")

	_ = cmd.RegisterFlagCompletionFunc("strategy", cobra.FixedCompletions(carve.Names(), cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(render.Formats(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// generateOptions merges the loaded config with the flags the user set.
// Flag defaults are captured when the command is built, before the config
// file is read, so only changed flags override the config.
func (c *CLI) generateOptions(cmd *cobra.Command, opts *generateOpts) (pipeline.Options, error) {
	p := c.config.Options()
	f := cmd.Flags()
	if f.Changed("height") {
		p.Height = opts.height
	}
	if f.Changed("width") {
		p.Width = opts.width
	}
	if f.Changed("strategy") {
		p.Strategy = opts.strategy
	}
	if f.Changed("seed") {
		p.Seed = opts.seed
	}
	if f.Changed("min-cycle") {
		p.MinCycle = opts.minCycle
	}
	if f.Changed("format") {
		p.Formats = parseFormats(opts.formats)
	}
	if f.Changed("cell") {
		p.CellSize = opts.cellSize
	}
	p.Steps = opts.steps
	p.Start = opts.start
	p.Animate = opts.animate
	p.Detailed = opts.detailed
	p.WithOrder = opts.order
	p.Logger = c.Logger

	if opts.output != "" {
		if err := errors.ValidateOutputPath(opts.output); err != nil {
			return p, err
		}
	}
	if err := p.ValidateAndSetDefaults(); err != nil {
		return p, err
	}
	return p, nil
}

func (c *CLI) runGenerate(ctx context.Context, stdout io.Writer, p pipeline.Options, opts *generateOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	toStdout := useStdout(opts.output, p.Formats)

	var spin *Spinner
	if !toStdout {
		spin = newSpinnerWithContext(ctx, "Carving maze...")
		spin.Start()
	}
	result, err := c.newRunner().Execute(ctx, p)
	if err != nil {
		if spin != nil {
			spin.StopWithError("Carve failed")
		}
		return err
	}
	if spin != nil {
		spin.StopWithSuccess("Generated maze " + StyleHighlight.Render(result.ID))
	}

	paths, err := writeArtifacts(stdout, result, p.Formats, opts.output)
	if err != nil {
		return err
	}

	if toStdout {
		// Keep stdout clean for piping.
		if opts.stats {
			fmt.Fprintln(os.Stderr, statsTable(result))
		}
		return nil
	}

	prog.done("Wrote %d file(s)", len(paths))
	printSummary(result.Grid.Height(), result.Grid.Width(), result.Report.Strategy, result.Seed, result.Report.Cycles())
	for _, path := range paths {
		printFile(path)
	}
	if n := result.Structure.Components; n > 1 {
		printWarning("maze has %d disconnected regions", n)
		printDetail("the %s strategy does not reach every cell; try --steps or another strategy", result.Report.Strategy)
	}
	if opts.stats {
		fmt.Println(statsTable(result))
	}
	return nil
}

// useStdout reports whether output goes to stdout: no path was given and
// there is exactly one text format.
func useStdout(output string, formats []string) bool {
	return output == "" && len(formats) == 1 && !render.Binary(formats[0])
}

// writeArtifacts writes every rendered format and returns the file paths
// written. With no output path and a single text format, the artifact goes
// to stdout and no paths are returned.
func writeArtifacts(stdout io.Writer, result *pipeline.Result, formats []string, output string) ([]string, error) {
	if useStdout(output, formats) {
		_, err := stdout.Write(result.Artifacts[formats[0]])
		return nil, err
	}

	var paths []string
	for _, format := range formats {
		path := outputPath(output, format, len(formats))
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return paths, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
			}
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return paths, errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath derives the file for format. A single format with an explicit
// path is written there verbatim; otherwise a known format extension is
// stripped from output and the format's extension appended.
func outputPath(output, format string, count int) string {
	if output == "" {
		return defaultBase + render.Extension(format)
	}
	ext := filepath.Ext(output)
	if count == 1 && ext != "" {
		return output
	}
	if render.Extension(strings.TrimPrefix(ext, ".")) != "" {
		output = strings.TrimSuffix(output, ext)
	}
	return output + render.Extension(format)
}

// statsTable renders the result's structure and timing as a table.
func statsTable(result *pipeline.Result) string {
	s := result.Structure
	rows := [][]string{
		{"id", result.ID},
		{"size", fmt.Sprintf("%dx%d", result.Grid.Height(), result.Grid.Width())},
		{"strategy", result.Report.Strategy},
		{"seed", strconv.FormatUint(result.Seed, 10)},
		{"passages", strconv.Itoa(s.Passages)},
		{"loops", strconv.Itoa(result.Report.Cycles())},
		{"cycles", strconv.Itoa(s.Cycles)},
		{"dead ends", strconv.Itoa(s.DeadEnds)},
		{"components", strconv.Itoa(s.Components)},
		{"perfect", strconv.FormatBool(s.Perfect)},
		{"carve time", result.Stats.CarveTime.String()},
	}

	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
	valueStyle := lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return keyStyle
			}
			return valueStyle
		}).
		Render()
}
