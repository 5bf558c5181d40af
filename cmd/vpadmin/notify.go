package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jaydeep9963/video-player-admin/internal/models"
)

func newNotifyCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "notify",
		Short:             "Send push notifications",
		PersistentPreRunE: requireAuth(a),
	}

	tokens := &cobra.Command{
		Use:   "tokens",
		Short: "List registered device tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := (*a).notifications.Tokens(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}

	var title, msg, at string
	send := &cobra.Command{
		Use:   "send",
		Short: "Send a notification to all devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := (*a).notifications.Send(cmd.Context(), models.NotificationPayload{
				Title:          title,
				Msg:            msg,
				NotificationAt: at,
			})
			if err != nil {
				return err
			}
			fmt.Println(resp.Message)
			if resp.Data != nil {
				return printJSON(resp.Data)
			}
			return nil
		},
	}
	send.Flags().StringVar(&title, "title", "", "Notification title")
	send.Flags().StringVar(&msg, "msg", "", "Notification body")
	send.Flags().StringVar(&at, "at", "", "Scheduled delivery time (RFC 3339, empty for now)")
	send.MarkFlagRequired("title")
	send.MarkFlagRequired("msg")

	var page, limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "List previously sent notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := (*a).notifications.History(cmd.Context(), page, limit)
			if err != nil {
				return err
			}
			os.Stdout.Write(raw)
			fmt.Println()
			return nil
		},
	}
	history.Flags().IntVar(&page, "page", 1, "Page number")
	history.Flags().IntVar(&limit, "limit", 10, "Page size")

	cmd.AddCommand(tokens, send, history)
	return cmd
}
