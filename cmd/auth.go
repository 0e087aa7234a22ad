package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/meetslots/internal/google"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth [auth-code]",
		Short: "Authenticate a Google account",
		Long: `Authenticate a Google account for calendar access.

Run without arguments to print the authorization URL. Open it in a
browser, grant access, and run the command again with the authorization
code Google displays.

Use --account to authenticate multiple accounts (e.g., work, personal).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Println("Open the following URL in a browser, grant access, and re-run with the authorization code:")
				fmt.Println()
				fmt.Println(google.GetAuthURL())
				return nil
			}

			ctx := context.Background()
			if err := google.SaveTokenForAccount(ctx, account, args[0]); err != nil {
				return fmt.Errorf("failed to save token for account %s: %w", account, err)
			}
			fmt.Printf("Token saved for account %q\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to authenticate (default: 'default')")
	return cmd
}
