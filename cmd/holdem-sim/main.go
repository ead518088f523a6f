package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/simulator"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"
)

type CLI struct {
	Config   string   `short:"c" default:"holdem.hcl" help:"Table configuration file (defaults are used when missing)"`
	Table    string   `short:"t" help:"Only run the named table"`
	Hands    int      `default:"1000" help:"Hands to play per table"`
	Players  int      `default:"6" help:"Bots seated at each table"`
	Copies   int      `default:"1" help:"Independent runs of each table"`
	Strategy []string `help:"Bot strategies assigned to seats in turn (rand, call, fold, tag)"`
	Seed     int64    `default:"0" help:"RNG seed (0 for random)"`
	LogLevel string   `help:"Override the configured log level"`
	NoColor  bool     `help:"Disable colored output"`
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	lossStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("holdem-sim"),
		kong.Description("Play bots against each other on the hold'em engine"))

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.Run(ctx, os.Stdout, os.Stderr)
	kctx.FatalIfErrorf(err)
}

// Run loads configuration, simulates every selected table and prints a summary
func (cli *CLI) Run(ctx context.Context, stdout, stderr io.Writer) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := log.NewWithOptions(stderr, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	tables := cfg.Tables
	if cli.Table != "" {
		t := cfg.Table(cli.Table)
		if t == nil {
			return fmt.Errorf("no table named %q in %s", cli.Table, cli.Config)
		}
		tables = []config.TableConfig{*t}
	}

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	copies := max(cli.Copies, 1)

	runs := make([]simulator.Config, 0, len(tables)*copies)
	for _, t := range tables {
		gc, err := t.GameConfig()
		if err != nil {
			return err
		}
		for c := range copies {
			name := t.Name
			if copies > 1 {
				name = fmt.Sprintf("%s#%d", t.Name, c+1)
			}
			runs = append(runs, simulator.Config{
				Name:       name,
				Table:      gc,
				Players:    cli.Players,
				BuyIn:      t.BuyIn,
				Hands:      cli.Hands,
				Strategies: cli.Strategy,
				Seed:       seed + int64(len(runs))*7919,
				Logger:     logger,
			})
		}
	}

	logger.Info("Starting simulation", "tables", len(runs), "hands", cli.Hands, "seed", seed)
	start := time.Now()

	results := make([]*simulator.Result, len(runs))
	g, gctx := errgroup.WithContext(ctx)
	for i, run := range runs {
		g.Go(func() error {
			res, err := simulator.Run(gctx, run)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprint(stdout, render(results, time.Since(start)))
	return nil
}

func render(results []*simulator.Result, elapsed time.Duration) string {
	var b strings.Builder
	hands := 0
	for _, res := range results {
		hands += res.Hands
		fmt.Fprintln(&b, titleStyle.Render(fmt.Sprintf("Table %s", res.Table)))
		fmt.Fprintf(&b, "%s\n", dimStyle.Render(fmt.Sprintf(
			"%d hands, %d showdowns, biggest pot %d, %d chips in play",
			res.Hands, res.Showdowns, res.BiggestPot, res.TotalChips)))
		fmt.Fprintln(&b, headerStyle.Render(fmt.Sprintf("%-14s %-6s %8s %9s %8s", "Player", "Bot", "Chips", "bb/100", "Win %")))
		for _, p := range res.Players {
			bb100 := p.Stats.BB100()
			style := winStyle
			if bb100 < 0 {
				style = lossStyle
			}
			line := fmt.Sprintf("%-14s %-6s %8d %9.1f %7.1f%%",
				p.ID, p.Strategy, p.FinalChips, bb100, p.Stats.WinRate()*100)
			if p.Busted {
				line += " busted"
			}
			fmt.Fprintln(&b, style.Render(line))
		}
		fmt.Fprintln(&b)
	}
	fmt.Fprintln(&b, dimStyle.Render(fmt.Sprintf("%d hands in %v", hands, elapsed.Round(time.Millisecond))))
	return b.String()
}
