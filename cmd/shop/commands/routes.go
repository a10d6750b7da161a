package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/mytheresa/go-shop/app/routes"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the named route table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printRoutes(cmd.OutOrStdout(), routes.Default())
		return nil
	},
}

func printRoutes(w io.Writer, table *routes.Table) {
	for _, r := range table.Routes() {
		fmt.Fprintf(w, "%s:%-26s %-22s (%s)\n", routes.Namespace, r.Name, r.Template, strings.Join(r.Params(), ", "))
	}
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
