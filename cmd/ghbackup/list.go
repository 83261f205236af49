package main

import (
	"fmt"

	"github.com/aviator-co/ghbackup/internal/archive"
	"github.com/aviator-co/ghbackup/internal/backup"
	"github.com/aviator-co/ghbackup/internal/utils/colors"
	"github.com/dustin/go-humanize"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [output-directory]",
	Short: "list the repositories a backup would download, without downloading them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		cfg := backupConfig(cmd, args)
		owner, repos, err := backup.NewOrchestrator(client, archive.Writer{}).Repositories(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(repos) > 0 {
			table := uitable.New()
			table.MaxColWidth = 60
			table.AddRow("REPOSITORY", "BRANCH", "SIZE", "ARCHIVE")
			for _, repo := range repos {
				table.AddRow(
					repo.Slug(),
					repo.DefaultBranch,
					// GitHub reports sizes in kilobytes.
					humanize.Bytes(uint64(repo.Size)*1024),
					archive.Path(cfg.OutputDirectory, repo.Name),
				)
			}
			_, _ = fmt.Fprintln(out, table)
		}

		scope := "owned by " + colors.UserInput(owner.Login)
		if cfg.AllowOtherOwners {
			scope = "accessible to " + colors.UserInput(owner.Login)
		}
		_, _ = fmt.Fprintf(out, "%s repositories %s.\n", humanize.Comma(int64(len(repos))), scope)
		return nil
	},
}
