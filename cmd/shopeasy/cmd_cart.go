package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/shopeasy/app/models"
)

var cartAddQty int

// shopeasy cart:add <productID> — fetch the product, add it, best-effort sync.
var cartAddCmd = &cobra.Command{
	Use:   "cart:add <productID>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		product, err := productService.Details(id)
		if err != nil {
			return fmt.Errorf("failed to add product to cart: %w", err)
		}

		// Mirror failures are best-effort; the local add already happened.
		_ = cartService.Add(models.ItemFromProduct(product, cartAddQty))
		fmt.Println("Product added to cart!")
		return nil
	},
}

// shopeasy cart:remove <productID> — drop every matching line.
var cartRemoveCmd = &cobra.Command{
	Use:   "cart:remove <productID>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		_ = cartService.Remove(id)
		return nil
	},
}

// shopeasy cart:show — print the current cart and its total.
var cartShowCmd = &cobra.Command{
	Use:   "cart:show",
	Short: "Show the current cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		items := appState.Cart.Items()
		if len(items) == 0 {
			fmt.Println("Your cart is empty.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY")
		for _, i := range items {
			fmt.Fprintf(w, "%d\t%s\t%.2f\t%d\n", i.ProductID, i.Name, i.Price, i.Quantity)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("Total: %.2f\n", appState.Cart.Total())
		return nil
	},
}

func init() {
	cartAddCmd.Flags().IntVar(&cartAddQty, "qty", 1, "quantity to add")
}
