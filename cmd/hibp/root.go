package main

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/insanitybit/haveibeenpwnd/client"
	"github.com/insanitybit/haveibeenpwnd/internal/config"
)

// cli carries state shared by subcommands once the root pre-run has resolved configuration.
type cli struct {
	cfg *config.Config

	// flag values; applied over the environment only when set explicitly
	userAgent string
	baseURL   string
	timeout   time.Duration
	debug     bool
	output    string
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	app := &cli{}

	rootCmd := &cobra.Command{
		Use:           "hibp",
		Short:         "Look up breaches, pastes and data classes on Have I Been Pwned",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.resolveConfig(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.userAgent, "user-agent", "", "User-Agent identifying your application (env HIBP_USER_AGENT)")
	flags.StringVar(&app.baseURL, "base-url", "", "API root (env HIBP_BASE_URL)")
	flags.DurationVar(&app.timeout, "timeout", 0, "HTTP timeout per request (env HIBP_TIMEOUT)")
	flags.BoolVarP(&app.debug, "debug", "d", false, "Log HTTP traffic at debug level (env HIBP_DEBUG)")
	flags.StringVarP(&app.output, "output", "o", "", "Output format: text or json (env HIBP_OUTPUT)")

	rootCmd.AddCommand(newAccountCmd(app))
	rootCmd.AddCommand(newBreachesCmd(app))
	rootCmd.AddCommand(newBreachCmd(app))
	rootCmd.AddCommand(newDataClassesCmd(app))
	rootCmd.AddCommand(newPastesCmd(app))

	return rootCmd
}

// resolveConfig loads HIBP_* variables, overlays explicitly set flags and initialises logging.
func (a *cli) resolveConfig(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("user-agent") {
		cfg.UserAgent = a.userAgent
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = a.baseURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	config.InitLogger(cfg.Level())
	log.Debug().Str("base_url", cfg.BaseURL).Str("output", cfg.Output).Msg("configuration resolved")

	a.cfg = cfg
	return nil
}

func (a *cli) client() (*client.Client, error) {
	return a.cfg.NewClient()
}
