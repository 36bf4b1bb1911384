package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every plan record and settlement",
		Long: `Reset wipes the ledger: all settlements are deleted first, then all plan
records. Accounts are kept. Stored proof files are not removed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				fmt.Fprint(cmd.OutOrStdout(), "This deletes all plans and settlements. Continue? [y/N]: ")
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "aborted")
					return nil
				}
			}

			c, cleanup, err := openContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			// A nil account is the operator: the CLI runs with full rights.
			res, err := c.Plans.Reset(cmd.Context(), nil)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d settlements and %d plans\n", res.Settlements, res.Plans)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
