package main

import (
	"fmt"

	"github.com/aviator-co/ghbackup/internal/utils/colors"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "show which GitHub user the token belongs to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		viewer, err := client.Viewer(cmd.Context())
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), "Logged in as ", colors.UserInput(viewer.Login), ".\n")
		return nil
	},
}
