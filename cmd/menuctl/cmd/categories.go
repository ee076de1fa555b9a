package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Lixing-Zhang/kart-storefront/internal/repository"
	"github.com/Lixing-Zhang/kart-storefront/internal/service"
	"github.com/Lixing-Zhang/kart-storefront/pkg/logger"
)

func newCategoriesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List menu categories with item counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := loadProducts(v)
			if err != nil {
				return err
			}
			repo, err := repository.NewProductRepository(products)
			if err != nil {
				return err
			}

			svc := service.NewProductService(repo, logger.NewWithWriter(cmd.ErrOrStderr(), "error"))
			categories, err := svc.ListCategories(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format := v.GetString("output"); format {
			case "json":
				return writeJSON(w, categories)
			case "table", "":
				data := tableData{
					Headers: []string{"Category", "Items"},
					Align:   []tw.Align{tw.AlignLeft, tw.AlignRight},
				}
				for _, c := range categories {
					data.Rows = append(data.Rows, []string{c.ID, strconv.Itoa(c.Count)})
				}
				return writeTable(w, data)
			default:
				return fmt.Errorf("unknown output format %q", format)
			}
		},
	}
}
