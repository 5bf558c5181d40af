package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jaydeep9963/video-player-admin/internal/api"
)

type videoFlags struct {
	title         string
	description   string
	categoryID    string
	subcategoryID string
	platform      string
	youtubeURL    string
	published     bool
	filePath      string
	thumbnailPath string
}

func (f *videoFlags) register(cmd *cobra.Command, withTaxonomy bool) {
	cmd.Flags().StringVar(&f.title, "title", "", "Title")
	cmd.Flags().StringVar(&f.description, "description", "", "Description")
	if withTaxonomy {
		cmd.Flags().StringVar(&f.categoryID, "category", "", "Category id")
		cmd.Flags().StringVar(&f.subcategoryID, "subcategory", "", "Subcategory id")
	}
	cmd.Flags().StringVar(&f.platform, "platform", "", "Source platform (local or youtube)")
	cmd.Flags().StringVar(&f.youtubeURL, "youtube-url", "", "YouTube URL when platform is youtube")
	cmd.Flags().BoolVar(&f.published, "published", false, "Publish immediately")
	cmd.Flags().StringVar(&f.filePath, "file", "", "Path to the video file")
	cmd.Flags().StringVar(&f.thumbnailPath, "thumbnail", "", "Path to the thumbnail image (omit on update to keep the current one)")
}

func (f *videoFlags) params(cmd *cobra.Command) (api.VideoParams, func(), error) {
	file, closeFile, err := fileParam(f.filePath)
	if err != nil {
		return api.VideoParams{}, nil, err
	}
	thumb, closeThumb, err := fileParam(f.thumbnailPath)
	if err != nil {
		closeFile()
		return api.VideoParams{}, nil, err
	}

	p := api.VideoParams{
		Title:         f.title,
		Description:   f.description,
		CategoryID:    f.categoryID,
		SubcategoryID: f.subcategoryID,
		Platform:      f.platform,
		YoutubeURL:    f.youtubeURL,
		File:          file,
		Thumbnail:     thumb,
	}
	if cmd.Flags().Changed("published") {
		published := f.published
		p.IsPublished = &published
	}
	return p, func() { closeThumb(); closeFile() }, nil
}

func newVideosCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "videos",
		Short:             "Manage videos",
		PersistentPreRunE: requireAuth(a),
	}

	var listParams api.ListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List videos",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := (*a).videos.List(cmd.Context(), listParams)
			if err != nil {
				return err
			}
			return printJSON(records)
		},
	}
	addListFlags(list, &listParams)

	var flags videoFlags
	create := &cobra.Command{
		Use:   "create",
		Short: "Upload a video",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, done, err := flags.params(cmd)
			if err != nil {
				return err
			}
			defer done()
			record, err := (*a).videos.Create(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printJSON(record)
		},
	}
	flags.register(create, true)
	create.MarkFlagRequired("title")

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, done, err := flags.params(cmd)
			if err != nil {
				return err
			}
			defer done()
			record, err := (*a).videos.Update(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}
			return printJSON(record)
		},
	}
	flags.register(update, true)

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).videos.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, create, update, remove)
	return cmd
}

func newShortsCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "shorts",
		Short:             "Manage short-form videos",
		PersistentPreRunE: requireAuth(a),
	}

	var listParams api.ListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List shorts",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := (*a).shorts.List(cmd.Context(), listParams)
			if err != nil {
				return err
			}
			return printJSON(records)
		},
	}
	addListFlags(list, &listParams)

	var flags videoFlags
	shortParams := func(cmd *cobra.Command) (api.ShortParams, func(), error) {
		p, done, err := flags.params(cmd)
		if err != nil {
			return api.ShortParams{}, nil, err
		}
		return api.ShortParams{
			Title:       p.Title,
			Description: p.Description,
			Platform:    p.Platform,
			YoutubeURL:  p.YoutubeURL,
			IsPublished: p.IsPublished,
			File:        p.File,
			Thumbnail:   p.Thumbnail,
		}, done, nil
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Upload a short",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, done, err := shortParams(cmd)
			if err != nil {
				return err
			}
			defer done()
			record, err := (*a).shorts.Create(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printJSON(record)
		},
	}
	flags.register(create, false)
	create.MarkFlagRequired("title")

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a short",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, done, err := shortParams(cmd)
			if err != nil {
				return err
			}
			defer done()
			record, err := (*a).shorts.Update(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}
			return printJSON(record)
		},
	}
	flags.register(update, false)

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a short",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).shorts.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, create, update, remove)
	return cmd
}
