package commands

import (
	"context"

	"github.com/spf13/cobra"

	"pwned/internal/app"
)

var (
	configPath   string
	serviceURL   string
	passwordsURL string
	userAgent    string
	apiKey       string
	logLevel     string
	jsonOutput   bool

	appCtx *app.Wire
)

// Execute runs the CLI with ctx; cancelling ctx aborts in-flight lookups.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pwned",
		Short:         "Look up breached accounts, pastes and passwords",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("service-url") {
				cfg.Pwned.ServiceAPIURL = serviceURL
			}
			if flags.Changed("passwords-url") {
				cfg.Pwned.PasswordsAPIURL = passwordsURL
			}
			if flags.Changed("user-agent") {
				cfg.Pwned.UserAgent = userAgent
			}
			if flags.Changed("api-key") {
				cfg.Pwned.ServiceAPIKey = apiKey
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}

			appCtx, err = app.NewWire(cfg)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				appCtx.Close()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default ./pwned.yaml or ~/.pwned/pwned.yaml)")
	pf.StringVar(&serviceURL, "service-url", "", "breach and paste API base URL")
	pf.StringVar(&passwordsURL, "passwords-url", "", "password API base URL")
	pf.StringVar(&userAgent, "user-agent", "", "User-Agent sent to both APIs")
	pf.StringVar(&apiKey, "api-key", "", "breach API key (hibp-api-key header)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&jsonOutput, "json", false, "print results as JSON")

	root.AddCommand(
		breachesCmd(),
		catalogCmd(),
		breachCmd(),
		dataClassesCmd(),
		pastesCmd(),
		passwordCmd(),
		validateCmd(),
	)
	return root
}
