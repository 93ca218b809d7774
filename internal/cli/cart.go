package cli

import (
	"fmt"
	"io"
	"time"

	"cartlab/internal/domain/model"
	"cartlab/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newCartCommand(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Shopping cart aggregations",
	}

	var delay time.Duration
	demo := &cobra.Command{
		Use:   "demo",
		Short: "Run the aggregations over a sample cart, then fetch more items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cart := usecase.NewCartAggregator(opts.Log, demoItems()...)
			return runDemo(cmd, cart, delay)
		},
	}
	demo.Flags().DurationVar(&delay, "delay", usecase.DefaultFetchDelay, "simulated fetch latency")

	cmd.AddCommand(demo)
	return cmd
}

func demoItems() []model.LineItem {
	return []model.LineItem{
		model.NewLineItem("Laptop", 1, "1200.00"),
		model.NewLineItem("Keyboard", 2, "75.50"),
		model.NewLineItem("Pens", 15, "1.25"),
		model.NewLineItem("Monitor", 1, "299.99"),
	}
}

func runDemo(cmd *cobra.Command, cart *usecase.CartAggregator, delay time.Duration) error {
	w := cmd.OutOrStdout()
	minPrice := decimal.RequireFromString("50.00")

	fmt.Fprintln(w, "--- Synchronous Operations ---")
	fmt.Fprintf(w, "Total Cart Value: $%s\n", cart.TotalValue().StringFixed(2))

	fmt.Fprintf(w, "\nItems with Unit Price > $%s:\n", minPrice.StringFixed(2))
	writeItems(w, cart.FilterByMinPrice(minPrice))

	fmt.Fprintln(w, "\nMost Expensive Item (Unit Price):")
	if top, ok := cart.MostExpensive(); ok {
		writeItems(w, []model.LineItem{top})
	} else {
		fmt.Fprintln(w, "  (cart is empty)")
	}

	fmt.Fprintln(w, "\nItems Grouped by Quantity:")
	for _, g := range cart.GroupByQuantityBand() {
		fmt.Fprintf(w, "%s\n", g.Band.Label())
		writeItems(w, g.Items)
	}

	fmt.Fprintf(w, "\n--- Fetching more items (wait %s) ---\n", delay)
	fetched, err := cart.FetchAdditionalItems(delay).Wait(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch additional items: %w", err)
	}
	fmt.Fprintln(w, "Fetched items added:")
	writeItems(w, fetched)
	fmt.Fprintf(w, "Final Total Cart Value: $%s\n", cart.TotalValue().StringFixed(2))
	return nil
}

func writeItems(w io.Writer, items []model.LineItem) {
	for _, it := range items {
		fmt.Fprintf(w, "  %-10s qty=%-3d price=%s\n", it.Name, it.Quantity, it.Price.StringFixed(2))
	}
}
