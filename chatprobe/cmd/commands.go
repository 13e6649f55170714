package main

import (
	"fmt"
	"io"

	"chatprobe/chatprobe/types"

	"github.com/spf13/cobra"
)

func newSignupCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "signup <username>",
		Short: "register a user and print its id",
		Long: `Register a user with POST /signup and print the user id the service assigns.
Signing up an existing username returns that user's id.`,
		Example: `  $ chatprobe signup testuser`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := app.api.Signup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			app.print(cmd.OutOrStdout(), map[string]types.UserID{"user_id": userID}, func(w io.Writer) {
				printID(w, "User ID", string(userID))
			})
			return nil
		},
	}
}

func newChatsCmd(app *cliApp) *cobra.Command {
	chats := &cobra.Command{
		Use:   "chats",
		Short: "create and list chats",
	}

	create := &cobra.Command{
		Use:     "create <user-id>",
		Short:   "open a new chat for a user",
		Long:    `Open a chat with POST /chats/. Each call opens a new chat.`,
		Example: `  $ chatprobe chats create 43f022db-0741-44e9-9bb1-a8df17c47f60`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chatID, err := app.api.CreateChat(cmd.Context(), types.UserID(args[0]))
			if err != nil {
				return err
			}
			app.print(cmd.OutOrStdout(), map[string]types.ChatID{"chat_id": chatID}, func(w io.Writer) {
				printID(w, "Chat ID", string(chatID))
			})
			return nil
		},
	}

	list := &cobra.Command{
		Use:     "list <user-id>",
		Short:   "list the chats of a user",
		Example: `  $ chatprobe chats list 43f022db-0741-44e9-9bb1-a8df17c47f60 -o json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := app.api.UserChats(cmd.Context(), types.UserID(args[0]))
			if err != nil {
				return err
			}
			app.print(cmd.OutOrStdout(), types.UserChatsResponse{ChatIDs: ids}, func(w io.Writer) {
				printChatIDs(w, ids)
			})
			return nil
		},
	}

	chats.AddCommand(create, list)
	return chats
}

func newMessagesCmd(app *cliApp) *cobra.Command {
	messages := &cobra.Command{
		Use:   "messages",
		Short: "post and list messages",
	}

	var sender string
	post := &cobra.Command{
		Use:   "post <chat-id> <content>",
		Short: "post a message into a chat",
		Long: `Post a message with POST /messages/. Content and sender are sent exactly
as given, without trimming.`,
		Example: `  $ chatprobe messages post 9df43e61-f6b8-4e65-8c73-0af755514199 "where do I start?"
  $ chatprobe messages post 9df43e61-f6b8-4e65-8c73-0af755514199 "start here" --sender ASSISTANT`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			messageID, err := app.api.CreateMessage(cmd.Context(), types.NewMessage{
				ChatID:  types.ChatID(args[0]),
				Sender:  sender,
				Content: args[1],
			})
			if err != nil {
				return err
			}
			app.print(cmd.OutOrStdout(), map[string]types.MessageID{"message_id": messageID}, func(w io.Writer) {
				printID(w, "Message ID", string(messageID))
			})
			return nil
		},
	}
	post.Flags().StringVarP(&sender, "sender", "s", types.SenderUser,
		fmt.Sprintf("sender tag, e.g. %s or %s; any value is sent as is", types.SenderUser, types.SenderAssistant))

	list := &cobra.Command{
		Use:     "list <chat-id>",
		Short:   "list the messages of a chat, oldest first",
		Example: `  $ chatprobe messages list 9df43e61-f6b8-4e65-8c73-0af755514199`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := app.api.ChatMessages(cmd.Context(), types.ChatID(args[0]))
			if err != nil {
				return err
			}
			app.print(cmd.OutOrStdout(), msgs, func(w io.Writer) {
				printMessages(w, msgs)
			})
			return nil
		},
	}

	messages.AddCommand(post, list)
	return messages
}
