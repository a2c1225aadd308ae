package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/golang-cz/devslog"
	"github.com/joho/godotenv"

	fitbit "github.com/Xevion/go-fitbit"
	"github.com/Xevion/go-fitbit/config"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout))
}

// execute runs one command and returns the process exit code.
func execute(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("fitbit-hr", flag.ContinueOnError)
	configPath := flags.String("config", "", "Path to a YAML config file.")
	start := flags.String("start", "today", "Start date: YYYY-MM-DD, today or yesterday.")
	end := flags.String("end", "", "End date: YYYY-MM-DD, today or yesterday.")
	period := flags.String("period", "", "Period such as 1d or 7d.")
	detail := flags.String("detail", "1min", "Intraday detail level.")
	startTime := flags.String("start-time", "", "Intraday window start (HH:MM).")
	endTime := flags.String("end-time", "", "Intraday window end (HH:MM).")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: fitbit-hr [flags] range|period|series|intraday\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not read .env", "error", err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("Error loading config", "error", err)
		return 1
	}
	slog.SetDefault(newLogger(cfg))

	client, err := fitbit.NewClient(cfg.ClientRequest())
	if err != nil {
		slog.Error("Error creating client", "error", err)
		return 1
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	body, err := run(client, flags.Arg(0), query{
		start:     *start,
		end:       *end,
		period:    *period,
		detail:    *detail,
		startTime: *startTime,
		endTime:   *endTime,
	})
	if err != nil {
		if fitbit.IsInvalidArgument(err) {
			slog.Error("Invalid arguments", "error", err)
			flags.Usage()
		} else {
			slog.Error("Request failed", "error", err)
		}
		return 1
	}

	if _, err := stdout.Write(body); err != nil {
		slog.Error("Error writing response", "error", err)
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("can't open config file: %w", err)
		}
		defer f.Close()
		cfg = cfg.WithReader(f)
	}
	return cfg.Load()
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.PrettyLogs {
		return slog.New(devslog.NewHandler(os.Stderr, &devslog.Options{HandlerOptions: opts}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
