package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// shopeasy products — list the catalogue.
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List all products",
	RunE: func(cmd *cobra.Command, args []string) error {
		products, err := productService.List()
		if err != nil {
			return err
		}
		if len(products) == 0 {
			fmt.Println("No products available.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK")
		fmt.Fprintln(w, "--\t----\t-----\t-----")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%.2f\t%d\n", p.ID, p.Name, p.Price, p.Stock)
		}
		return w.Flush()
	},
}

// shopeasy product <id> — show one product.
var productCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Show details for one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		p, err := productService.Details(id)
		if err != nil {
			return err
		}
		fmt.Printf("%s (#%d)\n", p.Name, p.ID)
		if p.Description != "" {
			fmt.Println(p.Description)
		}
		fmt.Printf("Price: %.2f\n", p.Price)
		return nil
	},
}

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return uint(n), nil
}
