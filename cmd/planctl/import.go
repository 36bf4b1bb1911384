package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
	"github.com/heartmarshall/incentive-ledger/internal/service/ingest"
)

func importCmd() *cobra.Command {
	var company string
	var month int

	cmd := &cobra.Command{
		Use:   "import FILE.xlsx [FILE.xlsx...]",
		Short: "Import plan spreadsheets for a company",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup, err := openContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			// Sheets are parsed concurrently and imported in argument order.
			sheets := make([][]domain.RawPlanRow, len(args))
			g, _ := errgroup.WithContext(cmd.Context())
			g.SetLimit(4)
			for i, path := range args {
				g.Go(func() error {
					f, err := os.Open(path)
					if err != nil {
						return err
					}
					defer f.Close()

					rows, err := c.Sheets.Read(f)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					sheets[i] = rows
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, rows := range sheets {
				res, err := c.Ingest.Import(cmd.Context(), ingest.ImportInput{
					Company: company,
					Month:   month,
					Rows:    rows,
				})
				if err != nil {
					return fmt.Errorf("%s: %w", args[i], err)
				}
				fmt.Fprintf(out, "%s: inserted %d, skipped %d\n", args[i], res.Inserted, res.Skipped)
				for _, w := range res.Warnings {
					fmt.Fprintf(out, "  warning: %s\n", w)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "company the plans belong to")
	cmd.Flags().IntVar(&month, "month", domain.DefaultPlanMonth, "plan month (1-12)")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}
