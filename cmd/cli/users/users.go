package users

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/crucial707/blog-api/cmd/cli/client"
	"github.com/crucial707/blog-api/cmd/cli/config"
	"github.com/crucial707/blog-api/internal/models"
	"github.com/spf13/cobra"
)

// ==========================
// CLI Command Init
// ==========================
func InitUsers(rootCmd *cobra.Command) {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users and authentication",
		Long: `Register, login or delete a user of the Blog API.
Stores the JWT token locally for future commands.`,
	}

	usersCmd.AddCommand(registerCmd(), loginCmd(), logoutCmd(), deleteAccountCmd())
	rootCmd.AddCommand(usersCmd)
}

// ==========================
// Register User
// ==========================
func registerCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		Long:  "Register a new user and save the returned token; prompts for missing values.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			username = prompt(cmd, in, "Username", username)
			password = prompt(cmd, in, "Password", password)

			var tok models.Token
			payload := map[string]string{"username": username, "password": password}
			if err := client.New().JSON(cmd.Context(), http.MethodPost, "/register", payload, &tok); err != nil {
				return err
			}
			if err := config.SaveToken(tok.AccessToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s. Token saved locally.\n", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username to register")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

// ==========================
// Login User
// ==========================
func loginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login an existing user",
		Long:  "Login and save JWT token locally for future CLI commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			username = prompt(cmd, in, "Username", username)
			password = prompt(cmd, in, "Password", password)

			var tok models.Token
			form := url.Values{"username": {username}, "password": {password}}
			if err := client.New().Form(cmd.Context(), "/login", form, &tok); err != nil {
				return err
			}
			if tok.AccessToken == "" {
				return fmt.Errorf("login succeeded but no token returned")
			}
			if err := config.SaveToken(tok.AccessToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Login successful! JWT token saved locally.")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username to authenticate as")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

// ==========================
// Logout User
// ==========================
func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout current user",
		Long:  "Remove locally saved JWT token. The token itself stays valid until it expires.",
		RunE: func(cmd *cobra.Command, args []string) error {
			existed, err := config.ClearToken()
			if err != nil {
				return err
			}
			if !existed {
				fmt.Fprintln(cmd.OutOrStdout(), "No user logged in.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out successfully.")
			return nil
		},
	}
}

// ==========================
// Delete Account
// ==========================
func deleteAccountCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "delete-account",
		Short: "Delete the logged-in account",
		Long:  "Delete the logged-in user together with their blogs and comments. Requires the password again.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.Authenticated()
			if err != nil {
				return err
			}
			password = prompt(cmd, bufio.NewReader(cmd.InOrStdin()), "Password", password)

			path := "/delete_account?" + url.Values{"password": {password}}.Encode()
			if err := c.JSON(cmd.Context(), http.MethodDelete, path, nil, nil); err != nil {
				return err
			}
			if _, err := config.ClearToken(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Account deleted.")
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "current password (prompted when omitted)")
	return cmd
}

// prompt returns value, or asks for it on the command's input when empty.
func prompt(cmd *cobra.Command, in *bufio.Reader, label, value string) string {
	if value != "" {
		return value
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ", label)
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return ""
	}
	return strings.TrimSpace(line)
}
