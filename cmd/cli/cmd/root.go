// Package cmd provides the CLI commands for refine-calc.
package cmd

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"refine-calc/core/input"
	"refine-calc/internal/config"
	"refine-calc/internal/logging"
)

// Version is the released version, overridden at build time
var Version = "0.1.0"

// errReported is returned when the failure was already printed for the user
var errReported = stderrors.New("errors reported")

type rootOptions struct {
	cfgFile string
	verbose bool
}

// NewRootCmd builds the command tree. Running the root command with tokens
// behaves like calculate.
func NewRootCmd() *cobra.Command {
	root := &rootOptions{}
	calc := &calculateOptions{}

	cmd := &cobra.Command{
		Use:   "refine-calc [tokens...]",
		Short: "Work out what to buy to refine everything you own",
		Long: `refine-calc takes the resources you own and lists the extra resources
you must buy so that all of them can be refined.

Each token is ` + input.Usage + `, for example ` + input.Example + `.

Examples:
  refine-calc 100ore4
  refine-calc 100ore4.1 20bar5 --format json
  refine-calc calculate --depth transitive 100ore5
  refine-calc tiers`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd, args, calc)
		},
	}

	cmd.PersistentFlags().StringVar(&root.cfgFile, "config", "", "config file (default is ./refine-calc.yaml or $HOME/.refine-calc/refine-calc.yaml)")
	cmd.PersistentFlags().BoolVarP(&root.verbose, "verbose", "v", false, "enable verbose output")
	calc.addFlags(cmd)

	cmd.SetHelpCommand(newHelpCmd())
	cmd.AddCommand(newCalculateCmd())
	cmd.AddCommand(newTiersCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// Execute runs the CLI
func Execute() error {
	cmd := NewRootCmd()
	err := cmd.Execute()
	if err != nil && !stderrors.Is(err, errReported) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	logging.Sync()
	return err
}

func (o *rootOptions) initConfig() error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s\n", input.Usage)
	fmt.Fprintf(w, "Example: %s\n", input.Example)
}

// newHelpCmd replaces cobra's help command so that a bare "help" token prints
// the token usage, as it does for calculate
func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Help about any command",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printUsage(cmd.OutOrStdout())
				return nil
			}
			target, _, err := cmd.Root().Find(args)
			if err != nil || target == cmd.Root() {
				printUsage(cmd.OutOrStdout())
				return nil
			}
			return target.Help()
		},
	}
}

// versionCmd prints version information
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "refine-calc version %s\n", Version)
		},
	}
}
