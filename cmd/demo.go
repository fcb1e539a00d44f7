package cmd

import (
	"fmt"

	"github.com/google/uuid"
	logging "github.com/ipfs/go-log"
	"github.com/spf13/cobra"
)

var demoLog = logging.Logger("demo")

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the end-to-end demo workflow",
	Long: `Run a complete workflow against the Polly service:

1. Register a new user
2. Log in to obtain a bearer token
3. Create a poll
4. List polls
5. Vote on the new poll
6. Retrieve the poll results
7. Delete the poll

When --username is not given, a random demo account is generated.`,
	RunE: runDemo,
}

var (
	demoUsername string
	demoPassword string
)

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVar(&demoUsername, "username", "", "demo account username (random when empty)")
	demoCmd.Flags().StringVar(&demoPassword, "password", "", "demo account password (random when empty)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	username := demoUsername
	if username == "" {
		username = fmt.Sprintf("demo-%s", uuid.NewString()[:8])
	}
	password := demoPassword
	if password == "" {
		password = uuid.NewString()
	}

	// Step 1: Register a new user
	cmd.Println("Step 1: Registering new user...")
	reg, err := c.Register(newContext(), username, password)
	if err != nil {
		return fmt.Errorf("registering user: %w", err)
	}
	if !reg.Success {
		return fmt.Errorf("registration failed: %w", reg.Err())
	}
	demoLog.Infow("user registered", "username", username, "user_id", reg.User.ID)
	cmd.Printf("Registered user %q (id %d)\n\n", reg.User.Username, reg.User.ID)

	// Step 2: Log in
	cmd.Println("Step 2: Logging in...")
	login, err := c.Login(newContext(), username, password)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}
	if !login.Success {
		return fmt.Errorf("login failed: %w", login.Err())
	}
	token := login.Token.AccessToken
	cmd.Println("Login successful")
	cmd.Println()

	// Step 3: Create a poll
	cmd.Println("Step 3: Creating a poll...")
	created, err := c.CreatePoll(newContext(), token,
		"What's your favorite season?",
		[]string{"Spring", "Summer", "Autumn", "Winter"},
	)
	if err != nil {
		return fmt.Errorf("creating poll: %w", err)
	}
	if !created.Success {
		return fmt.Errorf("poll creation failed: %w", created.Err())
	}
	poll := created.Poll
	demoLog.Infow("poll created", "poll_id", poll.ID, "question", poll.Question)
	cmd.Printf("Created poll %d: %s\n\n", poll.ID, poll.Question)

	// Step 4: List polls
	cmd.Println("Step 4: Fetching polls...")
	listed, err := c.ListPolls(newContext(), 0, 5)
	if err != nil {
		return fmt.Errorf("listing polls: %w", err)
	}
	if !listed.Success {
		return fmt.Errorf("listing polls failed: %w", listed.Err())
	}
	cmd.Printf("Retrieved %d polls\n", listed.Count)
	for _, p := range listed.Polls {
		cmd.Printf("  - Poll %d: %s\n", p.ID, p.Question)
	}
	cmd.Println()

	// Step 5: Vote for the first option
	cmd.Printf("Step 5: Voting on poll %d...\n", poll.ID)
	if len(poll.Options) == 0 {
		return fmt.Errorf("poll %d has no options to vote on", poll.ID)
	}
	voted, err := c.Vote(newContext(), token, poll.ID, poll.Options[0].ID)
	if err != nil {
		return fmt.Errorf("voting: %w", err)
	}
	if !voted.Success {
		return fmt.Errorf("voting failed: %w", voted.Err())
	}
	cmd.Printf("Vote recorded for option %q\n\n", poll.Options[0].Text)

	// Step 6: Get poll results
	cmd.Printf("Step 6: Getting results for poll %d...\n", poll.ID)
	results, err := c.GetPollResults(newContext(), poll.ID)
	if err != nil {
		return fmt.Errorf("getting poll results: %w", err)
	}
	if !results.Success {
		return fmt.Errorf("getting results failed: %w", results.Err())
	}
	cmd.Printf("Results for: %s\n", results.Results.Question)
	for _, r := range results.Results.Results {
		cmd.Printf("  - %s: %d votes\n", r.Text, r.VoteCount)
	}
	cmd.Println()

	// Step 7: Clean up
	cmd.Printf("Step 7: Deleting poll %d...\n", poll.ID)
	deleted, err := c.DeletePoll(newContext(), token, poll.ID)
	if err != nil {
		return fmt.Errorf("deleting poll: %w", err)
	}
	if !deleted.Success {
		return fmt.Errorf("deletion failed: %w", deleted.Err())
	}
	demoLog.Infow("poll deleted", "poll_id", poll.ID)
	cmd.Println("Poll deleted")

	cmd.Println("\nDemo completed successfully.")
	return nil
}
