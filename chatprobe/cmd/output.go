package main

import (
	"fmt"
	"io"

	"chatprobe/chatprobe/services/smoke"
	"chatprobe/chatprobe/types"
	"chatprobe/chatprobe/utils/color"
	"chatprobe/chatprobe/utils/jsonutils"
)

func jsonOut(v any) string { return jsonutils.ToJSON(v) }

func yamlOut(v any) string { return jsonutils.ToYAML(v) }

func printID(w io.Writer, label, id string) {
	fmt.Fprintf(w, "%s %s\n", color.ColorLabel(label+":"), color.ColorID(id))
}

func printChatIDs(w io.Writer, ids []types.ChatID) {
	fmt.Fprintf(w, "%s %d\n", color.ColorLabel("Chat IDs:"), len(ids))
	for _, id := range ids {
		fmt.Fprintf(w, "  %s\n", color.ColorID(string(id)))
	}
}

func printMessages(w io.Writer, msgs []types.Message) {
	fmt.Fprintf(w, "%s %d\n", color.ColorLabel("Messages:"), len(msgs))
	for _, m := range msgs {
		fmt.Fprintf(w, "  [%s] %s (%s)\n", color.ColorSender(m.Sender), m.Content, color.ColorID(string(m.ID)))
	}
}

func printReport(w io.Writer, r *smoke.Report) {
	printID(w, "User ID", string(r.UserID))
	if r.ChatID != "" {
		if r.ChatReused {
			fmt.Fprintf(w, "%s %s %s\n", color.ColorLabel("Chat ID:"), color.ColorID(string(r.ChatID)), color.ColorWarning("(reused)"))
		} else {
			printID(w, "Chat ID", string(r.ChatID))
		}
	}
	for _, id := range r.MessageIDs {
		printID(w, "Message ID", string(id))
	}
	if r.History != nil {
		printMessages(w, r.History)
	}
	if r.UserChatIDs != nil {
		printChatIDs(w, r.UserChatIDs)
	}
	fmt.Fprintln(w, color.ColorLabel("Steps:"))
	for _, s := range r.Steps {
		status := color.ColorSuccess("ok")
		if s.Err != "" {
			status = color.ColorError("failed: " + s.Err)
		}
		fmt.Fprintf(w, "  %-15s %6dms  %s\n", s.Name, s.DurationMS, status)
	}
}
