// Package main is the ShopEasy storefront CLI — the composition root that
// owns the application state and stands in for the page: flags are the form
// fields, stdout is the display, and each command maps to one user action.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/shopeasy/app/services"
	"github.com/shashiranjanraj/shopeasy/app/state"
	"github.com/shashiranjanraj/shopeasy/internal/bootstrap"
	"github.com/shashiranjanraj/shopeasy/pkg/event"
	"github.com/shashiranjanraj/shopeasy/pkg/session"
)

var (
	appState *state.State

	authService      *services.AuthService
	cartService      *services.CartService
	productService   *services.ProductService
	orderService     *services.OrderService
	analyticsService *services.AnalyticsService
	perfService      *services.PerformanceService
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "shopeasy",
	Short:             "ShopEasy — storefront client CLI",
	Long:              "ShopEasy is the command-line client for the ShopEasy storefront backend:\nsign in, browse the catalogue, manage your cart, and place orders.",
	PersistentPreRunE: boot,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// Coarse interaction + startup telemetry, best-effort as always.
		perfService.TrackInteraction("command", cmd.Name())
		perfService.TrackStartup()
	},
}

func boot(cmd *cobra.Command, args []string) error {
	st, err := bootstrap.Boot()
	if err != nil {
		return err
	}
	appState = st

	authService = services.NewAuthService(st)
	cartService = services.NewCartService(st)
	productService = services.NewProductService(st)
	orderService = services.NewOrderService(st)
	analyticsService = services.NewAnalyticsService()
	perfService = services.NewPerformanceService(analyticsService)

	// The display layer: refresh the cart badge and follow logout redirects.
	event.Listen(services.EventCartUpdated, func(payload interface{}) {
		if n, ok := payload.(int); ok {
			fmt.Printf("Cart: %d item(s)\n", n)
		}
	})
	event.Listen(session.EventCleared, func(payload interface{}) {
		if url, ok := payload.(string); ok {
			fmt.Printf("Signed out. Continue at %s\n", url)
		}
	})

	return nil
}

func init() {
	// Auth
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	// Catalogue
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(productCmd)

	// Cart
	rootCmd.AddCommand(cartAddCmd)
	rootCmd.AddCommand(cartRemoveCmd)
	rootCmd.AddCommand(cartShowCmd)

	// Orders
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(ordersCmd)

	// Diagnostics
	rootCmd.AddCommand(statsCmd)
}
