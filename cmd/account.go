package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user account",
	Long: `Register a new user account with the Polly service.

A 400 response means the username is already taken; pick another one
and retry.`,
	RunE: runRegister,
}

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and obtain a bearer token",
	Long: `Exchange credentials for a bearer token.

The token printed in the result's data must be passed via --token to
poll commands that require authentication (create, vote, delete).`,
	RunE: runLogin,
}

var (
	usernameFlag string
	passwordFlag string
)

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)

	registerCmd.Flags().StringVar(&usernameFlag, "username", "", "username (required)")
	registerCmd.Flags().StringVar(&passwordFlag, "password", "", "password (required)")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringVar(&usernameFlag, "username", "", "username (required)")
	loginCmd.Flags().StringVar(&passwordFlag, "password", "", "password (required)")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")
}

func runRegister(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	res, err := c.Register(newContext(), usernameFlag, passwordFlag)
	if err != nil {
		return fmt.Errorf("registering user: %w", err)
	}

	if err := printResult(cmd, res); err != nil {
		return err
	}
	if !res.Success {
		return res.Err()
	}

	// Provide next steps
	cmd.Printf("\nNext steps:\n")
	cmd.Printf("1. Log in to obtain a bearer token:\n")
	cmd.Printf("   polly login --username %s --password <password>\n", usernameFlag)

	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	res, err := c.Login(newContext(), usernameFlag, passwordFlag)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}

	if err := printResult(cmd, res); err != nil {
		return err
	}
	if !res.Success {
		return res.Err()
	}

	// Provide next steps
	cmd.Printf("\nNext steps:\n")
	cmd.Printf("1. Create a poll:\n")
	cmd.Printf("   polly poll create --token <token> --question \"...\" --option \"...\" --option \"...\"\n")
	cmd.Printf("2. Vote on a poll:\n")
	cmd.Printf("   polly poll vote --token <token> --poll-id <id> --option-id <id>\n")

	return nil
}
