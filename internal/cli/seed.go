package cli

import (
	"fmt"
	"sort"

	intconfig "bespokedbikes/internal/config"
	"bespokedbikes/internal/db"
	"bespokedbikes/internal/repositories"
	"bespokedbikes/internal/store"

	"github.com/spf13/cobra"
)

var seedOpts = db.DefaultSeedOptions()

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample data into empty tables",
	Long: `Insert sample products, salespersons and customers, then sales and
discounts that reference them. Tables that already hold rows are skipped.

Examples:
  bespokedbikes seed
  bespokedbikes seed --products 100 --rand-seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, conn, err := connect()
		if err != nil {
			return err
		}
		defer intconfig.CloseDB()

		if _, err := db.Migrate(cmd.Context(), conn); err != nil {
			return err
		}

		repos := repositories.New(store.NewUnitOfWork(conn))
		report, err := db.Seed(cmd.Context(), repos, seedOpts)
		if err != nil {
			return err
		}

		tables := make([]string, 0, len(report))
		for t := range report {
			tables = append(tables, t)
		}
		sort.Strings(tables)
		for _, t := range tables {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %d\n", t, report[t])
		}
		return nil
	},
}

func init() {
	f := seedCmd.Flags()
	f.IntVar(&seedOpts.Products, "products", seedOpts.Products, "Number of products")
	f.IntVar(&seedOpts.Salespersons, "salespersons", seedOpts.Salespersons, "Number of salespersons")
	f.IntVar(&seedOpts.Customers, "customers", seedOpts.Customers, "Number of customers")
	f.IntVar(&seedOpts.Sales, "sales", seedOpts.Sales, "Number of sales")
	f.IntVar(&seedOpts.Discounts, "discounts", seedOpts.Discounts, "Number of discounts")
	f.Uint64Var(&seedOpts.RandSeed, "rand-seed", seedOpts.RandSeed, "Seed for the sample data generator")
}
