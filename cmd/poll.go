package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pollCmd represents the poll command
var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Poll management commands",
	Long:  `Commands for creating, listing, voting on, and deleting polls.`,
}

// pollCreateCmd represents the poll create command
var pollCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new poll",
	Long: `Create a poll with a question and at least two options.

Requires a bearer token obtained from login.`,
	RunE: runPollCreate,
}

// pollListCmd represents the poll list command
var pollListCmd = &cobra.Command{
	Use:   "list",
	Short: "List polls",
	Long: `Fetch a page of polls.

The result includes has_more and next_skip for walking subsequent pages.`,
	RunE: runPollList,
}

// pollVoteCmd represents the poll vote command
var pollVoteCmd = &cobra.Command{
	Use:   "vote",
	Short: "Vote on a poll option",
	Long:  `Cast a vote for an option of a poll. Requires a bearer token.`,
	RunE:  runPollVote,
}

// pollResultsCmd represents the poll results command
var pollResultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show poll results",
	Long:  `Retrieve the vote tallies for a poll.`,
	RunE:  runPollResults,
}

// pollDeleteCmd represents the poll delete command
var pollDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a poll",
	Long:  `Delete a poll you own. Requires a bearer token.`,
	RunE:  runPollDelete,
}

var (
	tokenFlag    string
	questionFlag string
	optionsFlag  []string
	pollIDFlag   int
	optionIDFlag int
	skipFlag     int
	limitFlag    int
)

func init() {
	rootCmd.AddCommand(pollCmd)
	pollCmd.AddCommand(pollCreateCmd)
	pollCmd.AddCommand(pollListCmd)
	pollCmd.AddCommand(pollVoteCmd)
	pollCmd.AddCommand(pollResultsCmd)
	pollCmd.AddCommand(pollDeleteCmd)

	// create flags
	pollCreateCmd.Flags().StringVar(&tokenFlag, "token", "", "bearer token (required)")
	pollCreateCmd.Flags().StringVar(&questionFlag, "question", "", "poll question (required)")
	pollCreateCmd.Flags().StringArrayVar(&optionsFlag, "option", nil, "poll option, repeat for each (at least two required)")
	pollCreateCmd.MarkFlagRequired("token")
	pollCreateCmd.MarkFlagRequired("question")
	pollCreateCmd.MarkFlagRequired("option")

	// list flags
	pollListCmd.Flags().IntVar(&skipFlag, "skip", 0, "number of polls to skip")
	pollListCmd.Flags().IntVar(&limitFlag, "limit", 10, "maximum polls per page")

	// vote flags
	pollVoteCmd.Flags().StringVar(&tokenFlag, "token", "", "bearer token (required)")
	pollVoteCmd.Flags().IntVar(&pollIDFlag, "poll-id", 0, "poll ID (required)")
	pollVoteCmd.Flags().IntVar(&optionIDFlag, "option-id", 0, "option ID (required)")
	pollVoteCmd.MarkFlagRequired("token")
	pollVoteCmd.MarkFlagRequired("poll-id")
	pollVoteCmd.MarkFlagRequired("option-id")

	// results flags
	pollResultsCmd.Flags().IntVar(&pollIDFlag, "poll-id", 0, "poll ID (required)")
	pollResultsCmd.MarkFlagRequired("poll-id")

	// delete flags
	pollDeleteCmd.Flags().StringVar(&tokenFlag, "token", "", "bearer token (required)")
	pollDeleteCmd.Flags().IntVar(&pollIDFlag, "poll-id", 0, "poll ID (required)")
	pollDeleteCmd.MarkFlagRequired("token")
	pollDeleteCmd.MarkFlagRequired("poll-id")
}

func runPollCreate(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	res, err := c.CreatePoll(newContext(), tokenFlag, questionFlag, optionsFlag)
	if err != nil {
		return fmt.Errorf("creating poll: %w", err)
	}

	if err := printResult(cmd, res); err != nil {
		return err
	}
	return res.Err()
}

func runPollList(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	res, err := c.ListPolls(newContext(), skipFlag, limitFlag)
	if err != nil {
		return fmt.Errorf("listing polls: %w", err)
	}

	if err := printResult(cmd, res); err != nil {
		return err
	}
	if !res.Success {
		return res.Err()
	}

	if res.HasMore {
		cmd.Printf("\nMore polls available:\n")
		cmd.Printf("   polly poll list --skip %d --limit %d\n", *res.NextSkip, limitFlag)
	}

	return nil
}

func runPollVote(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	res, err := c.Vote(newContext(), tokenFlag, pollIDFlag, optionIDFlag)
	if err != nil {
		return fmt.Errorf("voting: %w", err)
	}

	if err := printResult(cmd, res); err != nil {
		return err
	}
	return res.Err()
}

func runPollResults(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	res, err := c.GetPollResults(newContext(), pollIDFlag)
	if err != nil {
		return fmt.Errorf("getting poll results: %w", err)
	}

	if err := printResult(cmd, res); err != nil {
		return err
	}
	return res.Err()
}

func runPollDelete(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	res, err := c.DeletePoll(newContext(), tokenFlag, pollIDFlag)
	if err != nil {
		return fmt.Errorf("deleting poll: %w", err)
	}

	if err := printResult(cmd, res); err != nil {
		return err
	}
	return res.Err()
}
