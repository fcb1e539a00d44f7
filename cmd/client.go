package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pollyhq/polly-go/pkg/client"
)

// newClient creates a configured Polly API client
func newClient() (*client.Client, error) {
	c := GetConfig()

	return client.New(c.API.BaseURL,
		client.WithTimeout(c.API.Timeout),
		client.WithUserAgent(c.API.UserAgent),
	)
}

// newContext creates a context for API calls
func newContext() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), GetConfig().API.Timeout)
	_ = cancel // We'll let the client handle timeout
	return ctx
}

// printResult pretty-prints a normalized API result as indented JSON
func printResult(cmd *cobra.Command, result interface{}) error {
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("formatting response: %w", err)
	}

	cmd.Println(string(output))
	return nil
}
