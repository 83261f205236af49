package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"emperror.dev/errors"
	"github.com/aviator-co/ghbackup/internal/auth"
	"github.com/aviator-co/ghbackup/internal/config"
	"github.com/aviator-co/ghbackup/internal/utils/colors"
	"github.com/aviator-co/ghbackup/internal/utils/uiutils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	Debug            bool
	ConfigFile       string
	EnvFiles         []string
	NoProgress       bool
	Owner            string
	AllowOtherOwners bool
}

// loadedConfig is populated before any command runs.
var loadedConfig = config.Default()

var RootCmd = &cobra.Command{
	Use:   "ghbackup [output-directory]",
	Short: "back up your GitHub repositories as zip archives",
	Long: `Download the default branch of every repository you own as a zip archive.

Archives are written to <output-directory>/<repository>.zip (default ./backups).
The GitHub token is read from the ` + auth.TokenEnvVar + ` environment variable
(a .env file in the current directory is loaded first).`,
	Args: cobra.MaximumNArgs(1),

	// Don't automatically print errors or usage information (we handle that ourselves).
	// Cobra still prints usage if you return cmd.Usage() from RunE.
	SilenceErrors: true,
	SilenceUsage:  true,

	// Don't show "completion" command in help menu
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},

	// Run setup before invoking any child commands.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if rootFlags.Debug {
			logrus.SetLevel(logrus.DebugLevel)
			logrus.WithField("ghbackup_version", config.Version).Debug("enabled debug logging")
		}
		colors.SetupBackgroundColorTypeFromEnv()

		auth.LoadEnvFiles(rootFlags.EnvFiles...)

		// Note: this only returns an error if config exists and it can't be
		// read/parsed (or if an explicit --config file does not exist).
		cfg, didLoadConfig, err := config.Load(rootFlags.ConfigFile, nil)
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		if didLoadConfig {
			logrus.Debug("loaded configuration")
		} else {
			logrus.Debug("no configuration found")
		}
		loadedConfig = *cfg
		return nil
	},
	RunE: runBackup,
}

func init() {
	RootCmd.PersistentFlags().BoolVar(
		&rootFlags.Debug, "debug", false,
		"enable verbose debug logging",
	)
	RootCmd.PersistentFlags().StringVar(
		&rootFlags.ConfigFile, "config", "",
		"path to the config file (default: $XDG_CONFIG_HOME/ghbackup/config.yaml)",
	)
	RootCmd.PersistentFlags().StringArrayVar(
		&rootFlags.EnvFiles, "env-file", nil,
		"env file(s) to load before reading "+auth.TokenEnvVar+" (default: .env)",
	)
	RootCmd.PersistentFlags().StringVar(
		&rootFlags.Owner, "owner", "",
		"only back up repositories owned by this login (default: the token's user)",
	)
	RootCmd.PersistentFlags().BoolVar(
		&rootFlags.AllowOtherOwners, "allow-others-repos", false,
		"back up every repository the token can access, not only your own",
	)
	RootCmd.Flags().BoolVar(
		&rootFlags.NoProgress, "no-progress", false,
		"print log lines instead of the live progress view",
	)
	RootCmd.AddCommand(
		listCmd,
		versionCmd,
		whoamiCmd,
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		// In debug mode, show more detailed information about the error
		// (including the stack trace).
		if rootFlags.Debug {
			stackTrace := fmt.Sprintf("%+v", err)
			_, _ = fmt.Fprintf(os.Stderr, "error: %s\n%s\n", err, indent(stackTrace, "\t"))
		} else {
			_, _ = fmt.Fprint(os.Stderr, uiutils.RenderError(err))
		}

		os.Exit(1)
	}
}

func indent(s string, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
