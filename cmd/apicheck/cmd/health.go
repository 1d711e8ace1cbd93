package cmd

import (
	"fmt"

	"github.com/andyle182810/apicheck/config"
	"github.com/andyle182810/apicheck/reqres"
	"github.com/andyle182810/apicheck/schema"
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "health",
		Short: "List one page of users from the configured API and check its shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			result, err := reqres.NewFromConfig(cfg).ListUsers(cmd.Context(), page)
			if err != nil {
				return err
			}

			if err := schema.UserPage().Validate(result.Response.Body); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s page %d, %d of %d users, %s\n",
				cfg.BaseURL, result.Value.Page, len(result.Value.Data), result.Value.Total, result.Response.Duration)

			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 2, "Page to request")

	return cmd
}
