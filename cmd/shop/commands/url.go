package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mytheresa/go-shop/app/routes"
	"github.com/mytheresa/go-shop/models"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var urlCmd = &cobra.Command{
	Use:       "url <category|product|service|support> <id>",
	Short:     "Print the canonical path of a stored record",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"category", "product", "service", "support"},
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[1], err)
		}

		_, log, db, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		path, err := canonicalPath(cmd.Context(), db, routes.Default(), args[0], uint(id))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// canonicalPath loads the record of the given kind and builds its path.
func canonicalPath(ctx context.Context, db *gorm.DB, table models.Reverser, kind string, id uint) (string, error) {
	var (
		record interface {
			AbsoluteURL(models.Reverser) (string, error)
		}
		err error
	)

	switch kind {
	case "category":
		record, err = models.NewCategoriesRepository(db).GetByID(ctx, id)
	case "product":
		record, err = models.NewProductsRepository(db).GetByID(ctx, id)
	case "service":
		record, err = models.NewServicesRepository(db).GetByID(ctx, id)
	case "support":
		record, err = models.NewSupportsRepository(db).GetByID(ctx, id)
	default:
		return "", fmt.Errorf("unknown record kind %q", kind)
	}
	if err != nil {
		return "", err
	}
	return record.AbsoluteURL(table)
}

func init() {
	rootCmd.AddCommand(urlCmd)
}
