package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"hospitalflow/internal/config"
	"hospitalflow/internal/demo"
	"hospitalflow/internal/domain"
	"hospitalflow/internal/journal"
	"hospitalflow/internal/seed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type cli struct {
	cfg    config.Config
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "hospitalflow",
		Short:         "Hospital appointment, billing and notification workflow",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return c.fail(c.newJournal(), "load config", err)
			}
			c.cfg = cfg
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	// The bare command runs the demo, so it takes the same flags.
	var date string
	root.RunE = c.runDemo(&date)
	root.Flags().StringVar(&date, "date", "", dateUsage)
	root.AddCommand(c.demoCmd(), c.billCmd(), c.rosterCmd())

	return root
}

func (c *cli) newJournal() *journal.Journal {
	level := parseLogLevel(c.cfg.LogLevel)
	opts := journal.Options{Level: level}
	if c.cfg.LogMirror {
		opts.Mirror = slog.NewJSONHandler(c.stderr, &slog.HandlerOptions{Level: level}).WithAttrs([]slog.Attr{
			slog.String("service", "hospitalflow"),
		})
	}
	return journal.New(opts)
}

func (c *cli) fail(j *journal.Journal, msg string, err error) error {
	j.Logger().Error(msg, slog.Any("err", err))
	fmt.Fprintf(c.stderr, "error: %s: %v\n", msg, err)
	return err
}

const dateUsage = "appointment date, YYYY-MM-DD (default tomorrow)"

func (c *cli) demoCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the fixed demonstration script",
		RunE:  c.runDemo(&date),
	}
	cmd.Flags().StringVar(&date, "date", "", dateUsage)
	return cmd
}

func (c *cli) runDemo(date *string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		j := c.newJournal()

		day := time.Now().AddDate(0, 0, 1)
		if *date != "" {
			parsed, err := time.ParseInLocation("2006-01-02", *date, time.Local)
			if err != nil {
				return c.fail(j, "invalid date", err)
			}
			day = parsed
		}

		app, err := demo.NewApp(c.cfg, c.stdout, j)
		if err != nil {
			return c.fail(j, "wire components", err)
		}
		if err := app.Run(cmd.Context(), c.stdout, day); err != nil {
			return c.fail(j, "demo failed", err)
		}
		return nil
	}
}

func (c *cli) billCmd() *cobra.Command {
	var (
		minutes  int
		category string
	)
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Quote a bill for a visit",
		RunE: func(cmd *cobra.Command, args []string) error {
			j := c.newJournal()

			cat, err := domain.ParseCategory(category)
			if err != nil {
				return c.fail(j, "invalid category", err)
			}
			app, err := demo.NewApp(c.cfg, c.stdout, j)
			if err != nil {
				return c.fail(j, "wire components", err)
			}
			q, err := app.Billing.Quote(cmd.Context(), minutes, cat)
			if err != nil {
				return c.fail(j, "bill failed", err)
			}
			fmt.Fprintf(c.stdout, "%s patient, %d minutes (%s): %.2f\n", q.Category, q.DurationMinutes, q.Strategy, q.Amount)
			return nil
		},
	}
	cmd.Flags().IntVar(&minutes, "minutes", 30, "visit duration in minutes")
	cmd.Flags().StringVar(&category, "category", "general", "patient category: general, premium or emergency")
	return cmd
}

func (c *cli) rosterCmd() *cobra.Command {
	var (
		patients int
		doctors  int
		seedVal  uint64
	)
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Print a generated roster of patients and doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seedVal = c.cfg.DemoSeed
			}
			for _, p := range seed.RandomPatients(patients, seedVal) {
				fmt.Fprintf(c.stdout, "patient %s, age %d, %s, contact %s\n", p.Name, p.Age, p.Category, p.Contact)
			}
			for _, d := range seed.RandomDoctors(doctors, seedVal) {
				fmt.Fprintf(c.stdout, "doctor %s, %s, available=%t, slots %v\n", d.Name, d.Specialization, d.Available, d.TimeSlots)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&patients, "patients", 5, "number of patients to generate")
	cmd.Flags().IntVar(&doctors, "doctors", 2, "number of doctors to generate")
	cmd.Flags().Uint64Var(&seedVal, "seed", 0, "generator seed (default from config)")
	return cmd
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
