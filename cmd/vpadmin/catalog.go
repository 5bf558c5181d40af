package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Jaydeep9963/video-player-admin/internal/api"
)

// fileParam opens a --flag-provided path as an upload, or returns nil when
// the flag was not given so the backend retains the existing asset.
func fileParam(path string) (*api.FileParam, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return &api.FileParam{Filename: filepath.Base(path), Content: f}, func() { f.Close() }, nil
}

func addListFlags(cmd *cobra.Command, params *api.ListParams) {
	cmd.Flags().IntVar(&params.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "Page size")
	cmd.Flags().StringVar(&params.Search, "search", "", "Search term")
}

func newCategoriesCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "categories",
		Short:             "Manage categories",
		PersistentPreRunE: requireAuth(a),
	}

	var listParams api.ListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := (*a).categories.List(cmd.Context(), listParams)
			if err != nil {
				return err
			}
			return printJSON(records)
		},
	}
	addListFlags(list, &listParams)

	var name, description, imagePath string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			image, done, err := fileParam(imagePath)
			if err != nil {
				return err
			}
			defer done()
			record, err := (*a).categories.Create(cmd.Context(), api.CategoryParams{
				Name:        name,
				Description: description,
				Image:       image,
			})
			if err != nil {
				return err
			}
			return printJSON(record)
		},
	}
	create.Flags().StringVar(&name, "name", "", "Category name")
	create.Flags().StringVar(&description, "description", "", "Category description")
	create.Flags().StringVar(&imagePath, "image", "", "Path to the category image")
	create.MarkFlagRequired("name")

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, done, err := fileParam(imagePath)
			if err != nil {
				return err
			}
			defer done()
			record, err := (*a).categories.Update(cmd.Context(), args[0], api.CategoryParams{
				Name:        name,
				Description: description,
				Image:       image,
			})
			if err != nil {
				return err
			}
			return printJSON(record)
		},
	}
	update.Flags().StringVar(&name, "name", "", "Category name")
	update.Flags().StringVar(&description, "description", "", "Category description")
	update.Flags().StringVar(&imagePath, "image", "", "Path to a replacement image (omit to keep the current one)")

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).categories.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, create, update, remove)
	return cmd
}

func newSubcategoriesCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "subcategories",
		Short:             "Manage subcategories",
		PersistentPreRunE: requireAuth(a),
	}

	var listParams api.ListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List subcategories",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := (*a).subcategories.List(cmd.Context(), listParams)
			if err != nil {
				return err
			}
			return printJSON(records)
		},
	}
	addListFlags(list, &listParams)

	var name, description, categoryID, imagePath string
	addFields := func(c *cobra.Command) {
		c.Flags().StringVar(&name, "name", "", "Subcategory name")
		c.Flags().StringVar(&description, "description", "", "Subcategory description")
		c.Flags().StringVar(&categoryID, "category", "", "Parent category id")
		c.Flags().StringVar(&imagePath, "image", "", "Path to the subcategory image")
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a subcategory",
		RunE: func(cmd *cobra.Command, args []string) error {
			image, done, err := fileParam(imagePath)
			if err != nil {
				return err
			}
			defer done()
			record, err := (*a).subcategories.Create(cmd.Context(), api.SubcategoryParams{
				Name:        name,
				Description: description,
				CategoryID:  categoryID,
				Image:       image,
			})
			if err != nil {
				return err
			}
			return printJSON(record)
		},
	}
	addFields(create)
	create.MarkFlagRequired("name")
	create.MarkFlagRequired("category")

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a subcategory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, done, err := fileParam(imagePath)
			if err != nil {
				return err
			}
			defer done()
			record, err := (*a).subcategories.Update(cmd.Context(), args[0], api.SubcategoryParams{
				Name:        name,
				Description: description,
				CategoryID:  categoryID,
				Image:       image,
			})
			if err != nil {
				return err
			}
			return printJSON(record)
		},
	}
	addFields(update)

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a subcategory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).subcategories.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, create, update, remove)
	return cmd
}
