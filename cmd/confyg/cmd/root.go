// Package cmd implements the confyg CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/confyg/pkg/logging"
)

var (
	logLevel  string
	logFormat string

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "confyg",
	Short: "Schema-driven YAML configuration reconciliation",
	Long: `Confyg keeps YAML configuration documents in sync with a declared
schema: defaults are filled in, user-edited values are preserved, and
keys the schema no longer declares are pruned.

The reconcile command applies the same merge the library performs at
schema load time, taking a defaults document in place of a compiled-in
schema, which makes it handy for inspecting what a reconciliation pass
would do to a configuration file.`,
	PersistentPreRunE: setupLogging,
}

// Execute adds all child commands to the root command and runs it.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
	rootCmd.Version = version

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console, json)")

	if err := viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		panic(fmt.Sprintf("Failed to bind log-level flag: %v", err))
	}
	if err := viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		panic(fmt.Sprintf("Failed to bind log-format flag: %v", err))
	}
}

// initConfig reads the config file, .env files, and environment variables.
func initConfig() {
	// Load .env files first (before Viper env binding); .env.local overrides .env
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".confyg")
		// Config file is optional
		_ = viper.ReadInConfig()
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
}

// setupLogging configures the default logger from flags and environment.
func setupLogging(_ *cobra.Command, _ []string) error {
	level := viper.GetString("log_level")
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		zerolog.SetGlobalLevel(parsed)
	}

	if viper.GetString("log_format") == "json" {
		logging.SetDefault(logging.New(os.Stderr))
	}
	return nil
}
