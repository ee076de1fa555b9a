package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Lixing-Zhang/kart-storefront/internal/browse"
	"github.com/Lixing-Zhang/kart-storefront/internal/models"
)

func newListCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List menu items matching a search",
		Long: `List menu items.

Items are filtered by search text (name or description, case-insensitive),
category and dietary preference, then sorted. Unrecognized category, diet or
sort values do not filter.`,
		Example: `  menuctl list --category beverages --diet vegan --sort price-low
  menuctl list --search chai -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := loadProducts(v)
			if err != nil {
				return err
			}

			sel := browse.NewSelection(products)
			sel.SetSearchQuery(v.GetString("search"))
			sel.SetCategory(v.GetString("category"))
			sel.SetDietaryFilter(v.GetString("diet"))
			sel.SetSortKey(v.GetString("sort"))

			return writeProducts(cmd.OutOrStdout(), v.GetString("output"), sel.Results())
		},
	}

	defaults := models.DefaultFilterConfig()
	cmd.Flags().StringP("search", "s", defaults.SearchQuery, "search text")
	cmd.Flags().StringP("category", "c", defaults.Category, "category: all, "+strings.Join(models.Categories(), ", "))
	cmd.Flags().StringP("diet", "d", defaults.DietaryFilter, "dietary filter: all, veg, vegan, jain, gluten-free")
	cmd.Flags().String("sort", defaults.SortKey, "sort key: popular, rating, price-low, price-high")

	return cmd
}

func writeProducts(w io.Writer, format string, products []models.Product) error {
	switch format {
	case "json":
		return writeJSON(w, products)
	case "table", "":
		data := tableData{
			Headers: []string{"ID", "Name", "Category", "Price", "Rating", "Reviews", "Diet"},
			Align:   []tw.Align{tw.AlignLeft, tw.AlignLeft, tw.AlignLeft, tw.AlignRight, tw.AlignRight, tw.AlignRight, tw.AlignLeft},
		}
		for _, p := range products {
			data.Rows = append(data.Rows, []string{
				p.ID,
				p.Name,
				p.Category,
				strconv.FormatFloat(p.Price, 'f', 2, 64),
				strconv.FormatFloat(p.Rating, 'f', 1, 64),
				strconv.Itoa(p.ReviewCount),
				dietLabel(p),
			})
		}
		if err := writeTable(w, data); err != nil {
			return err
		}
		fmt.Fprintf(w, "%d item(s)\n", len(products))
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func dietLabel(p models.Product) string {
	var parts []string
	if p.IsVeg {
		parts = append(parts, models.DietVeg)
	}
	if p.IsVegan {
		parts = append(parts, models.DietVegan)
	}
	if p.IsJain {
		parts = append(parts, models.DietJain)
	}
	if p.IsGlutenFree {
		parts = append(parts, models.DietGlutenFree)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}
