package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fulgidus/mathutils/internal/config"
	"github.com/fulgidus/mathutils/internal/logging"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

// NewRootCmd builds the mathutils command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		v:      viper.New(),
		cfg:    config.DefaultConfig(),
		logger: zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   "mathutils",
		Short: "Cartesian products and primality checks",
		Long: `mathutils exposes two small algorithms from the command line:

  - product: every ordered pair of two comma-separated lists
  - prime:   primality of integers by trial division

Results go to stdout as text, JSON or YAML; logs go to stderr.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./mathutils.yaml)")
	flags.String("log-level", a.cfg.Log.Level, "log level (debug, info, warn, error)")
	flags.String("log-format", a.cfg.Log.Format, "log format (json, console)")
	flags.StringP("output", "o", a.cfg.Output.Format, "output format (text, json, yaml)")

	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("output.format", flags.Lookup("output"))

	rootCmd.AddCommand(
		newProductCmd(a),
		newPrimeCmd(a),
		newDemoCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	config.Setup(a.v, a.cfgFile)

	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger.With(zap.String("command", cmd.Name()))

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("Using config file", zap.String("path", used))
	}

	return nil
}
