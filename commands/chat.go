// ABOUTME: Chat REPL against the DocTalk assistant
// ABOUTME: Appends to a local transcript persisted in the history store

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/doctalk/doctalk-cli/history"
	"github.com/doctalk/doctalk-cli/models"
)

const chatGreeting = "Hello! I'm Dr. AI. How can I help you today?"

// chatFlow runs the chat loop. Each turn sends exactly one message and
// appends the reply to the local transcript; no conversation context goes
// back to the backend. The chat stays usable without a login.
func (r *Runner) chatFlow(ctx context.Context) error {
	store := r.openHistory()
	if store != nil {
		defer store.Close()
	}

	fmt.Fprintf(r.out, "Dr. AI: %s\n", chatGreeting)
	fmt.Fprintln(r.out, "(type 'exit' to leave)")

	for {
		input := r.prompt("You")
		if input == "" || input == "exit" || input == "quit" {
			return nil
		}

		r.appendHistory(ctx, store, models.ChatMessage{Sender: "user", Text: input})

		reply, err := r.client.Chat(ctx, input)
		if err != nil {
			// The widget never surfaces chat errors; the bot apologizes instead.
			reply = models.DemoChatReply
		}

		fmt.Fprintf(r.out, "Dr. AI: %s\n", reply)
		r.appendHistory(ctx, store, models.ChatMessage{Sender: "bot", Text: reply})
	}
}

func (r *Runner) showChatHistory(ctx context.Context) error {
	store := r.openHistory()
	if store == nil {
		return fmt.Errorf("chat history is unavailable")
	}
	defer store.Close()

	msgs, err := store.Recent(ctx, 50)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		fmt.Fprintln(r.out, "No saved messages.")
		return nil
	}
	for _, m := range msgs {
		name := "You"
		if m.Sender == "bot" {
			name = "Dr. AI"
		}
		fmt.Fprintf(r.out, "%s: %s\n", name, m.Text)
	}
	return nil
}

// openHistory opens the transcript store, degrading to in-memory-only chat
// when the database can't be opened.
func (r *Runner) openHistory() *history.Store {
	store, err := history.Open(r.cfg.HistoryPath())
	if err != nil {
		slog.Warn("Chat history unavailable", "error", err)
		return nil
	}
	return store
}

func (r *Runner) appendHistory(ctx context.Context, store *history.Store, msg models.ChatMessage) {
	if store == nil {
		return
	}
	if err := store.Append(ctx, msg); err != nil {
		slog.Warn("Failed to save chat message", "error", err)
	}
}
