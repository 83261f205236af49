package main

import (
	"context"
	"fmt"

	"github.com/aviator-co/ghbackup/internal/archive"
	"github.com/aviator-co/ghbackup/internal/backup"
	"github.com/aviator-co/ghbackup/internal/backup/backupui"
	"github.com/aviator-co/ghbackup/internal/utils/uiutils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func runBackup(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	orchestrator := backup.NewOrchestrator(client, archive.Writer{})
	cfg := backupConfig(cmd, args)
	logrus.WithFields(logrus.Fields{
		"output_directory":   cfg.OutputDirectory,
		"allow_other_owners": cfg.AllowOtherOwners,
		"owner":              cfg.Owner,
	}).Debug("starting backup")

	var summary *backup.Summary
	if !rootFlags.NoProgress && !rootFlags.Debug && uiutils.IsInteractive() {
		model := backupui.NewModel(cmd.Context(), func(ctx context.Context, progress backup.Progress) (*backup.Summary, error) {
			return orchestrator.Run(ctx, cfg, progress)
		})
		err = uiutils.RunBubbleTea(model)
		summary = model.Summary()
	} else {
		summary, err = orchestrator.Run(cmd.Context(), cfg, &backup.LogProgress{})
	}

	// Per-repository failures are part of the summary, not the exit code.
	if summary != nil {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), backup.FormatSummary(summary))
	}
	return err
}
