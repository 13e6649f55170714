// Command-line interface for smoke testing a chat service
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatprobe/chatprobe/config"
	"chatprobe/chatprobe/services/chatapi"
	"chatprobe/chatprobe/utils/color"
	"chatprobe/chatprobe/utils/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.1.0" // overridden at build time with -ldflags

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// cliApp carries the persistent flags and what PersistentPreRunE builds from them.
type cliApp struct {
	configPath string
	baseURL    string
	timeout    time.Duration
	output     string
	logDir     string
	verbose    bool
	noColor    bool

	cfg config.Config
	api *chatapi.Client
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	logging.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.ColorError("✗ "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	app := &cliApp{}

	root := &cobra.Command{
		Use:     "chatprobe",
		Short:   "Smoke test a chat service HTTP API",
		Version: version,
		Long: `chatprobe drives a chat service through its HTTP API: sign a user up,
open a chat, post messages and read them back. Every command issues its
requests once and fails on the first non-2xx answer.`,
		Example: `  # Register a user against the default http://127.0.0.1:8000
  $ chatprobe signup testuser

  # Post into an existing chat
  $ chatprobe messages post 9df43e61-f6b8-4e65-8c73-0af755514199 "hello" --sender USER

  # Run the whole chain from a scenario file, printing JSON
  $ chatprobe run --scenario smoke.yaml -o json`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&app.configPath, "config", "", "path to YAML config (default $"+config.EnvConfigPath+")")
	flags.StringVar(&app.baseURL, "base-url", "", "chat service base URL (overrides config)")
	flags.DurationVar(&app.timeout, "timeout", 0, "per-request timeout, 0 for none (overrides config)")
	flags.StringVarP(&app.output, "output", "o", outputText, "output format: text, json or yaml")
	flags.StringVar(&app.logDir, "log-dir", "", "directory for log files (overrides config)")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "also log to stderr")
	flags.BoolVar(&app.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newSignupCmd(app),
		newChatsCmd(app),
		newMessagesCmd(app),
		newRunCmd(app),
		newVersionCmd(),
	)
	return root
}

// setup resolves configuration (file/env, then flags), starts logging and
// builds the API client.
func (a *cliApp) setup(cmd *cobra.Command, args []string) error {
	switch a.output {
	case outputText, outputJSON, outputYAML:
	default:
		return fmt.Errorf("unknown output format %q", a.output)
	}
	if a.noColor {
		color.Disable()
	}

	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if a.logDir != "" {
		cfg.Log.Dir = a.logDir
	}
	if a.verbose {
		cfg.Log.Console = true
	}
	a.cfg = cfg

	if err := logging.InitLogger(logging.Options{Dir: cfg.Log.Dir, Level: cfg.Log.Level, Console: cfg.Log.Console}); err != nil {
		return err
	}

	a.api, err = chatapi.New(chatapi.Config{BaseURL: cfg.BaseURL, Timeout: cfg.Timeout}, chatapi.WithLogger(logging.RequestLogger))
	if err != nil {
		return err
	}
	logging.AppLogger.Info("chatprobe starting",
		zap.String("command", cmd.CommandPath()),
		zap.String("base_url", a.api.BaseURL()),
		zap.Duration("timeout", cfg.Timeout),
	)
	return nil
}

// print writes v in the selected format; text output is produced by text.
func (a *cliApp) print(w io.Writer, v any, text func(w io.Writer)) {
	switch a.output {
	case outputJSON:
		fmt.Fprintln(w, jsonOut(v))
	case outputYAML:
		fmt.Fprintln(w, yamlOut(v))
	default:
		text(w)
	}
}
