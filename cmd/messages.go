package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kawalpreet/folio/internal/contact"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Inspect and redeliver stored contact messages",
}

var messagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored contact messages, newest first",
	RunE:  runMessagesList,
}

var messagesRedeliverCmd = &cobra.Command{
	Use:   "redeliver",
	Short: "Retry delivery of pending and failed messages",
	RunE:  runMessagesRedeliver,
}

func init() {
	messagesListCmd.Flags().String("status", "", "filter by status: pending, delivered, failed")
	messagesListCmd.Flags().Duration("since", 0, "only messages newer than this (e.g. 72h)")
	messagesListCmd.Flags().Int("limit", 20, "maximum number of messages")
	messagesListCmd.Flags().Bool("json", false, "output messages as JSON")

	messagesCmd.AddCommand(messagesListCmd)
	messagesCmd.AddCommand(messagesRedeliverCmd)
	rootCmd.AddCommand(messagesCmd)
}

func runMessagesList(cmd *cobra.Command, args []string) error {
	status, _ := cmd.Flags().GetString("status")
	since, _ := cmd.Flags().GetDuration("since")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	filter := contact.ListFilter{Limit: limit}
	if status != "" {
		st := contact.Status(status)
		switch st {
		case contact.StatusPending, contact.StatusDelivered, contact.StatusFailed:
		default:
			return fmt.Errorf("unknown status %q: must be pending, delivered or failed", status)
		}
		filter.Statuses = []contact.Status{st}
	}
	if since > 0 {
		filter.Since = time.Now().Add(-since)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	database, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	msgs, err := contact.NewStore(database).List(context.Background(), filter)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(msgs)
	}

	if len(msgs) == 0 {
		fmt.Println("No messages.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRECEIVED\tSTATUS\tATTEMPTS\tFROM\tMESSAGE")
	for _, m := range msgs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s <%s>\t%s\n",
			shortID(m.ID), humanize.Time(m.CreatedAt), m.Status, m.Attempts, m.Name, m.Email, preview(m.Body, 50))
	}
	return w.Flush()
}

func runMessagesRedeliver(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	database, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	svc := newContactService(cfg, database)
	delivered, failed, err := svc.Dispatcher().Redeliver(cmd.Context())
	if err != nil {
		return fmt.Errorf("redelivering: %w", err)
	}

	fmt.Printf("Redelivered %s message(s), %s still failing\n", humanize.Comma(int64(delivered)), humanize.Comma(int64(failed)))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// preview flattens a message body to one line of at most n runes.
func preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) > n {
		return string(r[:n-3]) + "..."
	}
	return s
}
