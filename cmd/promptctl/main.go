package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"typeprompt/internal/config"
	"typeprompt/internal/infrastructure/i18n"
	"typeprompt/internal/logger"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout, usageLocale())
		os.Exit(0)
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("promptctl v%s\n", version)
		return
	case "help", "-h", "--help":
		printUsage(os.Stdout, usageLocale())
		return
	}

	os.Exit(run(os.Args[1], os.Args[2:]))
}

// usageLocale is the configured UI locale, or English when the
// configuration does not load.
func usageLocale() string {
	cfg, err := config.Load()
	if err != nil {
		return "en"
	}
	return cfg.UILocale
}

func printUsage(w io.Writer, locale string) {
	tr := i18n.NewTranslator(locale, nil)
	fmt.Fprintln(w, tr.T(locale, "cli.usage", nil))
	fmt.Fprintln(w)
	fmt.Fprintln(w, tr.T(locale, "cli.usage_heading", nil))
	for _, c := range commands {
		fmt.Fprintf(w, "  promptctl %s\n", c.usage)
	}
	fmt.Fprintln(w, "  promptctl version")
}

func run(name string, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		return 1
	}
	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		return 1
	}
	defer log.Sync()

	tr := i18n.NewTranslator(cfg.UILocale, log)

	cmd, ok := lookupCommand(name)
	if !ok {
		fmt.Fprintln(os.Stderr, tr.T(cfg.UILocale, "cli.unknown_command", map[string]any{"Command": name}))
		return 1
	}
	if len(args) != cmd.args {
		fmt.Fprintln(os.Stderr, tr.T(cfg.UILocale, "cli.bad_arguments", map[string]any{"Usage": cmd.usage}))
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, log, tr, os.Stdout)
	if err != nil {
		log.Error("startup failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "❌ %s\n", i18n.ErrorMessage(tr, cfg.UILocale, err))
		return 1
	}
	defer a.Close()

	if err := cmd.run(ctx, a, args); err != nil {
		log.Error("command failed", zap.String("command", name), zap.Error(err))
		fmt.Fprintf(os.Stderr, "❌ %s\n", i18n.ErrorMessage(tr, cfg.UILocale, err))
		return 1
	}
	return 0
}
