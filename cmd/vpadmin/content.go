package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jaydeep9963/video-player-admin/internal/api"
	"github.com/Jaydeep9963/video-player-admin/internal/models"
)

func newContentCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "content",
		Short:             "Manage static content pages",
		Long:              "Manage the about-us, privacy-policy and terms-and-conditions pages.",
		PersistentPreRunE: requireAuth(a),
	}

	get := &cobra.Command{
		Use:   "get <type>",
		Short: "Show a content page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := (*a).content.GetByType(cmd.Context(), models.ContentType(args[0]))
			if err != nil {
				if errors.Is(err, api.ErrContentNotFound) {
					fmt.Printf("No %s page exists yet\n", args[0])
					return nil
				}
				return err
			}
			return printJSON(record)
		},
	}

	var bodyFile string
	set := &cobra.Command{
		Use:   "set <type>",
		Short: "Create or update a content page from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := os.ReadFile(bodyFile)
			if err != nil {
				return err
			}
			record, err := (*a).content.Save(cmd.Context(), models.ContentType(args[0]), string(body))
			if err != nil {
				return err
			}
			return printJSON(record)
		},
	}
	set.Flags().StringVar(&bodyFile, "file", "", "Path to the page body (HTML)")
	set.MarkFlagRequired("file")

	cmd.AddCommand(get, set)
	return cmd
}

func newFeedbackCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "feedback",
		Short:             "View user feedback",
		PersistentPreRunE: requireAuth(a),
	}

	var listParams api.ListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List feedback entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := (*a).feedback.List(cmd.Context(), listParams)
			if err != nil {
				return err
			}
			return printJSON(records)
		},
	}
	addListFlags(list, &listParams)

	cmd.AddCommand(list)
	return cmd
}

func newOverviewCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:     "overview",
		Short:   "Show dashboard counts and recent items",
		PreRunE: requireAuth(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := (*a).overview.Get(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
}
