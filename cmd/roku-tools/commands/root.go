package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/roku-tools/internal/assistant"
	"github.com/ironsheep/roku-tools/internal/config"
	"github.com/ironsheep/roku-tools/internal/logging"
	"github.com/ironsheep/roku-tools/internal/tools"
)

var (
	// Global flags
	envFile  string
	cfgFile  string
	logLevel string

	// Loaded by the root pre-run
	cfg    config.Config
	logger *slog.Logger

	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "roku-tools",
	Short: "Tool collection for the Roku voice assistant",
	Long: `roku-tools - the tools behind the Roku voice assistant.

Weather, web/news/music/YouTube search, current events, general questions,
email, PDF and image text extraction, date and time, election information
and short stories. Every tool answers with text that can be spoken aloud.

Configuration comes from a .env file, an optional YAML file and the
environment (GOOGLE_API_KEY, GMAIL_USER, GMAIL_APP_PASSWORD, TESSERACT_CMD,
ROKU_LOG_LEVEL, ...).

Examples:
  # Serve over MCP on stdio for an agent runtime
  roku-tools serve

  # Also expose HTTP and websocket endpoints
  roku-tools serve --http :8080

  # Try a tool by hand
  roku-tools call get_weather '{"city":"London"}'
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile, cfgFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		// stdout carries MCP
		logger = logging.Setup(os.Stderr, cfg.LogLevel)
		return nil
	},
}

// SetBuildInfo records the version stamped into the binary.
func SetBuildInfo(v, built, commit string) {
	version, buildTime, gitCommit = v, built, commit
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file loaded into the environment if present")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides ROKU_LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(versionCmd)
}

// newRegistry builds the production registry from the loaded configuration.
func newRegistry(deps assistant.Deps) (*tools.Registry, error) {
	return assistant.Build(cfg, deps, logger)
}
