package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
		Long:  `List, add, update, and delete the user-defined categories. The seven built-in categories are fixed and cannot be changed.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Long:  `Display the built-in categories followed by the persisted custom set in its deterministic order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := initApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.cleanup()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			printCategory := func(cat model.Category) {
				badge := categoryBadge(cat)
				color := cat.Color
				if color == "" {
					color = cli.SubtleStyle.Render("-")
				}
				fmt.Fprintf(w, "%s\t%s %s\t%s\n", cat.ID, badge, cat.Name, color)
			}

			for _, cat := range model.BuiltinCategories() {
				printCategory(cat)
			}
			for _, cat := range app.ctrl.CustomCategories() {
				printCategory(cat)
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		icon  string
		color string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if name == "" {
				return fmt.Errorf("category name cannot be empty")
			}

			app, err := initApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.cleanup()

			cat := model.Category{
				ID:    fmt.Sprintf("%s%d", model.CustomIDPrefix, time.Now().UnixMilli()),
				Name:  name,
				Icon:  icon,
				Color: color,
			}
			app.ctrl.UpsertCategory(cat)

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("added category %s (%s)", cat.Name, cat.ID)))
			return nil
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&icon, "icon", "", "glyph shown for this category")
	cmd.Flags().StringVar(&color, "color", "", "badge color used when no icon is set")

	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var (
		name  string
		icon  string
		color string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a custom category in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			app, err := initApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.cleanup()

			existing, found := findCustom(app.ctrl.CustomCategories(), id)
			if !found {
				return fmt.Errorf("no custom category with id %q", id)
			}

			if name != "" {
				existing.Name = name
			}
			if cmd.Flags().Changed("icon") {
				existing.Icon = icon
			}
			if cmd.Flags().Changed("color") {
				existing.Color = color
			}
			app.ctrl.UpsertCategory(existing)

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("updated category %s", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&icon, "icon", "", "new glyph (empty clears it)")
	cmd.Flags().StringVar(&color, "color", "", "new badge color (empty clears it)")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a custom category",
		Long: `Delete a custom category. Transactions that reference it keep their
stored category id and display as Other from then on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			app, err := initApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.cleanup()

			if _, found := findCustom(app.ctrl.CustomCategories(), id); !found {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("no custom category with id %q", id)))
				return nil
			}

			app.ctrl.DeleteCategory(id)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("deleted category %s", id)))
			return nil
		},
	}
}

func findCustom(categories []model.Category, id string) (model.Category, bool) {
	for _, cat := range categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return model.Category{}, false
}
