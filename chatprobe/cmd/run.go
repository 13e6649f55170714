package main

import (
	"context"
	"io"

	"chatprobe/chatprobe/scenario"
	"chatprobe/chatprobe/services/smoke"
	"chatprobe/chatprobe/types"
	"chatprobe/chatprobe/utils/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(app *cliApp) *cobra.Command {
	var (
		scenarioPath string
		username     string
		chatID       string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "run signup, chat creation and messaging as one chain",
		Long: `Run the whole smoke chain: sign up, open a chat (or reuse --chat-id), post
every scenario message, then read back the chat's messages and the user's chats.
Each step feeds its id to the next. The run stops at the first failure and
prints what it got so far.

Without --scenario the built-in scenario is used: user "testuser" posting one
USER message.`,
		Example: `  $ chatprobe run
  $ chatprobe run --scenario smoke.yaml --username alice -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := scenario.Default()
			if scenarioPath != "" {
				var err error
				if sc, err = scenario.Load(scenarioPath); err != nil {
					return err
				}
			}
			if username != "" {
				sc.Username = username
			}
			if chatID != "" {
				sc.ChatID = types.ChatID(chatID)
			}

			runID := uuid.New().String()[:8]
			ctx := context.WithValue(cmd.Context(), logging.TraceIDKey, runID)
			log := logging.AppLogger.With(zap.String("trace_id", runID))

			report, err := smoke.New(app.api, log).Run(ctx, sc)
			if report != nil {
				app.print(cmd.OutOrStdout(), report, func(w io.Writer) {
					printReport(w, report)
				})
			}
			return err
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file")
	cmd.Flags().StringVar(&username, "username", "", "override the scenario username")
	cmd.Flags().StringVar(&chatID, "chat-id", "", "reuse this chat instead of creating one")
	return cmd
}
