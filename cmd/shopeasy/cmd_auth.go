package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/shopeasy/app/models"
	"github.com/shashiranjanraj/shopeasy/app/services"
	"github.com/shashiranjanraj/shopeasy/config"
)

var (
	loginEmail    string
	loginPassword string

	registerName     string
	registerEmail    string
	registerPassword string
)

// shopeasy login — establish a session.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := authService.Login(loginEmail, loginPassword)
		if err != nil {
			var authErr *services.AuthenticationError
			if errors.As(err, &authErr) {
				fmt.Printf("Login failed: %s\n", authErr.Message)
				return nil
			}
			return fmt.Errorf("login failed. Please try again: %w", err)
		}
		fmt.Printf("Welcome back, %s! Continue at %s\n", user.Name, config.AccountURL())
		return nil
	},
}

// shopeasy register — create an account. Does not sign in.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := authService.Register(services.RegisterInput{
			Name:     registerName,
			Email:    registerEmail,
			Password: registerPassword,
		})
		if err != nil {
			var valErr *services.ValidationError
			var authErr *services.AuthenticationError
			switch {
			case errors.As(err, &valErr):
				fmt.Println(valErr.Message)
				return nil
			case errors.As(err, &authErr):
				fmt.Printf("Registration failed: %s\n", authErr.Message)
				return nil
			}
			return fmt.Errorf("registration failed. Please try again: %w", err)
		}
		fmt.Println("Registration successful! Please login.")
		return nil
	},
}

// shopeasy logout — clear the persisted session.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		authService.Logout()
	},
}

// shopeasy whoami — show the stored profile snapshot, offline.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user from the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		var user models.User
		if !appState.Session.Current(&user) {
			fmt.Println("Not signed in.")
			return
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	loginCmd.MarkFlagRequired("email")    //nolint:errcheck
	loginCmd.MarkFlagRequired("password") //nolint:errcheck

	registerCmd.Flags().StringVar(&registerName, "name", "", "display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "account password")
	registerCmd.MarkFlagRequired("name")     //nolint:errcheck
	registerCmd.MarkFlagRequired("email")    //nolint:errcheck
	registerCmd.MarkFlagRequired("password") //nolint:errcheck
}
