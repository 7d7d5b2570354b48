package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/pkg/maze/carve"
	"github.com/matzehuels/mazegen/pkg/pipeline"
	"github.com/matzehuels/mazegen/pkg/render/ascii"
)

var (
	mazeStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	statusStyle = lipgloss.NewStyle().Foreground(colorGray)
)

// playCommand creates the play command, which reveals a maze cell by cell in
// the order the visit walk reaches it.
func (c *CLI) playCommand() *cobra.Command {
	var (
		height, width int
		strategy      string
		seed          uint64
		delay         time.Duration
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Reveal a maze in the terminal",
		Long: `Carve a maze and reveal it cell by cell in visitation order.

Keys: r regenerates, space reveals everything, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.config.Options()
			opts.Logger = c.Logger
			f := cmd.Flags()
			if f.Changed("height") {
				opts.Height = height
			}
			if f.Changed("width") {
				opts.Width = width
			}
			if f.Changed("strategy") {
				opts.Strategy = strategy
			}
			if f.Changed("seed") {
				opts.Seed = seed
			}
			d := time.Duration(c.config.Delay)
			if f.Changed("delay") {
				d = delay
			}
			return c.runPlay(cmd.Context(), opts, d)
		},
	}

	def := c.config
	cmd.Flags().IntVarP(&height, "height", "H", def.Height, "maze height in cells")
	cmd.Flags().IntVarP(&width, "width", "W", def.Width, "maze width in cells")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", def.Strategy, "carve strategy: "+strings.Join(carve.Names(), ", "))
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().DurationVar(&delay, "delay", time.Duration(def.Delay), "delay between revealed cells")

	return cmd
}

func (c *CLI) runPlay(ctx context.Context, opts pipeline.Options, delay time.Duration) error {
	// The TUI owns the terminal; keep info logs out of the way.
	quiet := c.Logger.WithPrefix("play")
	if !c.verbose {
		quiet.SetLevel(LogWarn)
	}
	opts.Logger = quiet
	runner := pipeline.NewRunner(quiet)

	result, err := runner.Generate(ctx, opts)
	if err != nil {
		return err
	}

	m := newPlayModel(ctx, runner, result, opts, delay)
	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if pm, ok := final.(playModel); ok && pm.err != nil {
		return pm.err
	}
	return nil
}

// =============================================================================
// playModel - Animated reveal
// =============================================================================

// revealMsg reveals the next cell of generation gen.
type revealMsg struct{ gen int }

type playModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	opts   pipeline.Options
	result *pipeline.Result
	delay  time.Duration

	sequence []int
	hidden   []bool
	revealed int
	gen      int
	err      error
}

func newPlayModel(ctx context.Context, runner *pipeline.Runner, result *pipeline.Result, opts pipeline.Options, delay time.Duration) playModel {
	m := playModel{ctx: ctx, runner: runner, opts: opts, result: result, delay: delay}
	m.reset()
	return m
}

// reset hides every cell and recomputes the visit sequence.
func (m *playModel) reset() {
	g := m.result.Grid
	m.sequence = g.VisitSequence()
	m.hidden = make([]bool, g.Cells())
	for i := range m.hidden {
		m.hidden[i] = true
	}
	m.revealed = 0
	m.gen++
	if m.delay <= 0 {
		m.revealAll()
	}
}

func (m *playModel) revealAll() {
	for m.revealed < len(m.sequence) {
		m.hidden[m.sequence[m.revealed]] = false
		m.revealed++
	}
}

func (m playModel) done() bool { return m.revealed >= len(m.sequence) }

func (m playModel) tick() tea.Cmd {
	if m.done() {
		return nil
	}
	gen := m.gen
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return revealMsg{gen: gen} })
}

func (m playModel) Init() tea.Cmd {
	return m.tick()
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.revealAll()
		case "r":
			if err := m.runner.Regenerate(m.ctx, m.result, m.opts); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.reset()
			return m, m.tick()
		}
	case revealMsg:
		// Ticks from before a regenerate are stale.
		if msg.gen != m.gen || m.done() {
			return m, nil
		}
		m.hidden[m.sequence[m.revealed]] = false
		m.revealed++
		return m, m.tick()
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder
	g := m.result.Grid

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s %dx%d", m.result.Report.Strategy, g.Height(), g.Width())))
	b.WriteString("\n\n")
	b.WriteString(mazeStyle.Render(string(ascii.Render(g, ascii.WithHidden(m.hidden)))))
	b.WriteString("\n")

	status := fmt.Sprintf("%d/%d cells", m.revealed, len(m.sequence))
	if loops := m.result.Report.Cycles(); loops > 0 {
		status += fmt.Sprintf(" · %d loops", loops)
	}
	if m.result.Seed != 0 {
		status += fmt.Sprintf(" · seed %d", m.result.Seed)
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("r regenerate  space reveal  q quit"))
	b.WriteString("\n")
	return b.String()
}
