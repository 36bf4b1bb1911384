package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
	"github.com/heartmarshall/incentive-ledger/internal/service/account"
)

func provisionCmd() *cobra.Command {
	var input account.ProvisionInput
	var role string

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create an admin or manager account",
		Example: `  planctl provision --email admin@ledger.uz --password secret123 --role admin
  planctl provision --email m@synergy.uz --password secret123 --role manager \
      --company Synergy --regions "Samarkand, Bukhara" --group AB`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, cleanup, err := openContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			input.Role = domain.Role(strings.ToLower(role))
			acc, err := c.Accounts.Provision(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s %s (%s)\n", acc.Role, acc.Email, acc.ID)
			if len(acc.Regions) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "regions: %s\n", strings.Join(acc.Regions, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Email, "email", "", "login email")
	cmd.Flags().StringVar(&input.Password, "password", "", "initial password")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleManager), "admin or manager")
	cmd.Flags().StringVar(&input.Company, "company", "", "company the manager belongs to")
	cmd.Flags().StringVar(&input.Regions, "regions", "", "comma separated regions in any spelling")
	cmd.Flags().StringVar(&input.GroupAccess, "group", "", "group access code, e.g. AB or ALL")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
