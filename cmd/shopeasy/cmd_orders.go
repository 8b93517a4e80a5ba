package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/shopeasy/app/models"
	"github.com/shashiranjanraj/shopeasy/app/services"
	"github.com/shashiranjanraj/shopeasy/config"
)

var checkoutItems []string

// shopeasy checkout — build the cart from --item flags and place the order.
//
// The cart lives only in memory for the duration of the process, so checkout
// assembles it the same way the storefront page does: fetch each product,
// add it to the cart (mirroring as it goes), then place the order.
var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order for the given items",
	RunE: func(cmd *cobra.Command, args []string) error {
		var user models.User
		if !appState.Session.Current(&user) {
			fmt.Printf("Please sign in first: %s\n", config.LoginURL())
			return nil
		}
		if len(checkoutItems) == 0 {
			return fmt.Errorf("nothing to order — pass at least one --item id[:qty]")
		}

		for _, spec := range checkoutItems {
			id, qty, err := parseItemSpec(spec)
			if err != nil {
				return err
			}
			product, err := productService.Details(id)
			if err != nil {
				return fmt.Errorf("failed to place order: %w", err)
			}
			_ = cartService.Add(models.ItemFromProduct(product, qty))
		}

		order, err := orderService.Place(models.OrderRequest{
			Items: appState.Cart.Items(),
			Total: appState.Cart.Total(),
		})
		if err != nil {
			var orderErr *services.OrderError
			if errors.As(err, &orderErr) {
				fmt.Printf("Failed to place order: %s\n", orderErr.Message)
				return nil
			}
			return fmt.Errorf("failed to place order. Please try again: %w", err)
		}

		fmt.Printf("Order placed successfully! Order #%d, total %.2f. Continue at %s\n",
			order.ID, order.Total, config.AccountURL())
		return nil
	},
}

// shopeasy orders — list order history.
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Show your order history",
	RunE: func(cmd *cobra.Command, args []string) error {
		orders, err := orderService.History()
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("No orders yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tTOTAL\tSTATUS\tPLACED")
		for _, o := range orders {
			fmt.Fprintf(w, "%d\t%.2f\t%s\t%s\n", o.ID, o.Total, o.Status, o.CreatedAt)
		}
		return w.Flush()
	},
}

// parseItemSpec parses "id" or "id:qty".
func parseItemSpec(spec string) (uint, int, error) {
	idPart, qtyPart, hasQty := strings.Cut(spec, ":")

	id, err := parseID(idPart)
	if err != nil {
		return 0, 0, err
	}

	qty := 1
	if hasQty {
		qty, err = strconv.Atoi(qtyPart)
		if err != nil || qty < 1 {
			return 0, 0, fmt.Errorf("invalid quantity in %q", spec)
		}
	}
	return id, qty, nil
}

func init() {
	checkoutCmd.Flags().StringArrayVar(&checkoutItems, "item", nil, "product to order, as id or id:qty (repeatable)")
}
