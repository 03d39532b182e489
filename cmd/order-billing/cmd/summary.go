package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var summaryBranch string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show today's order summary",
	RunE:  runSummary,
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Show tracked inventory levels",
	RunE:  runInventory,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(inventoryCmd)

	summaryCmd.Flags().StringVar(&summaryBranch, "branch", "", "Restrict to one branch")
}

func runSummary(cmd *cobra.Command, args []string) error {
	pipeline, closeStore, err := buildPipeline(newLogger())
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	summary, err := pipeline.DailySummary(summaryBranch)
	if err != nil {
		return err
	}

	if outputFormat == "table" {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Orders\t%d\n", summary.OrderCount)
		fmt.Fprintf(w, "Gross Revenue\t%s\n", summary.GrossRevenue.StringFixed(2))
		return w.Flush()
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

func runInventory(cmd *cobra.Command, args []string) error {
	pipeline, closeStore, err := buildPipeline(newLogger())
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	inventory, err := pipeline.Inventory()
	if err != nil {
		return err
	}

	if outputFormat == "table" {
		items := make([]string, 0, len(inventory))
		for item := range inventory {
			items = append(items, item)
		}
		sort.Strings(items)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Item\tStock")
		for _, item := range items {
			fmt.Fprintf(w, "%s\t%d\n", item, inventory[item])
		}
		return w.Flush()
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(inventory)
}
