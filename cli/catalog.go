package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gpsshowcase/config"
	"gpsshowcase/models"
)

func catalogCmd(flags *rootFlags) *cobra.Command {
	var category, search string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List restaurants, optionally filtered by category or text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(config.Load(), flags)
			if err != nil {
				return err
			}

			list := cat.All()
			if category != "" {
				c := models.Category(category)
				if !c.Valid() {
					return fmt.Errorf("unknown category %q", category)
				}
				list = cat.FilterByCategory(c)
			}
			if search != "" {
				list = intersect(list, cat.Search(search))
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No results found.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tRATING\tSTATUS")
			for _, r := range list {
				fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%s\n", r.ID, r.Name, r.Category.Label(), r.Rating, r.Status)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "category slug, e.g. fine-dining")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive text match")
	return cmd
}

// intersect keeps the entries of list that also appear in matches.
func intersect(list, matches []models.Restaurant) []models.Restaurant {
	ids := make(map[int64]bool, len(matches))
	for _, r := range matches {
		ids[r.ID] = true
	}
	out := make([]models.Restaurant, 0, len(list))
	for _, r := range list {
		if ids[r.ID] {
			out = append(out, r)
		}
	}
	return out
}
