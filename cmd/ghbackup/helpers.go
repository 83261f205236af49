package main

import (
	"github.com/aviator-co/ghbackup/internal/auth"
	"github.com/aviator-co/ghbackup/internal/backup"
	"github.com/aviator-co/ghbackup/internal/gh"
	"github.com/spf13/cobra"
)

// newClient resolves the credential once and builds the GitHub client that is
// shared by every component of a run.
func newClient() (*gh.Client, error) {
	cred, err := auth.ResolveFromEnv(loadedConfig.GitHub.Token)
	if err != nil {
		return nil, err
	}
	return gh.NewClient(
		cred,
		gh.WithBaseURL(loadedConfig.GitHub.APIURL),
		gh.WithUserAgent(loadedConfig.GitHub.UserAgent),
		gh.WithTimeout(loadedConfig.GitHub.Timeout),
		gh.WithMaxPages(loadedConfig.GitHub.MaxPages),
	)
}

// backupConfig merges the command line over the config file.
func backupConfig(cmd *cobra.Command, args []string) backup.Config {
	cfg := backup.Config{
		OutputDirectory:       loadedConfig.Backup.OutputDirectory,
		AllowOtherOwners:      loadedConfig.Backup.AllowOtherOwners,
		Owner:                 loadedConfig.Backup.Owner,
		CreateOutputDirectory: loadedConfig.Backup.CreateOutputDirectory,
	}
	if len(args) > 0 && args[0] != "" {
		cfg.OutputDirectory = args[0]
	}
	if cfg.OutputDirectory == "" {
		cfg.OutputDirectory = backup.DefaultOutputDirectory
	}
	if cmd.Flags().Changed("allow-others-repos") {
		cfg.AllowOtherOwners = rootFlags.AllowOtherOwners
	}
	if rootFlags.Owner != "" {
		cfg.Owner = rootFlags.Owner
	}
	return cfg
}
