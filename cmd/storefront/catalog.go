package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dieuclat/storefront/internal/catalog"
	"github.com/dieuclat/storefront/internal/entity"
)

var (
	catalogCategory string
	catalogPriceMax string
	catalogSort     string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List products, filtered and sorted like the shop page",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringVar(&catalogCategory, "category", catalog.AllCategories, "Only show this category")
	catalogCmd.Flags().StringVar(&catalogPriceMax, "price-max", "", "Highest price to show, e.g. 2500 or ₹2,500")
	catalogCmd.Flags().StringVar(&catalogSort, "sort", string(catalog.SortFeatured), "featured, price-low, price-high or rating")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	store, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	key, err := catalog.ParseSortKey(catalogSort)
	if err != nil {
		return err
	}
	f := catalog.Filter{Category: catalogCategory}
	if catalogPriceMax != "" {
		limit, err := entity.ParseMoney(catalogPriceMax, entity.DefaultCurrency)
		if err != nil {
			return fmt.Errorf("invalid --price-max: %w", err)
		}
		f.PriceMax = catalog.PriceCap(limit.Amount)
	}

	products := catalog.FilterAndSort(store.FindAll(), f, key)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tRATING")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f\n", p.ID, p.Name, p.Category, p.Price.Format(), p.Rating)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d of %d products\n", len(products), store.Len())
	return nil
}
