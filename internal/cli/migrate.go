package cli

import (
	"fmt"
	"strings"

	intconfig "bespokedbikes/internal/config"
	"bespokedbikes/internal/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create missing tables",
	Long: `Create the products, salespersons, customers, sales and discounts tables
when they do not exist yet. Existing tables are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, conn, err := connect()
		if err != nil {
			return err
		}
		defer intconfig.CloseDB()

		created, err := db.Migrate(cmd.Context(), conn)
		if err != nil {
			return err
		}
		if len(created) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created tables: %s\n", strings.Join(created, ", "))
		return nil
	},
}
