// Package cmd - calculate command
package cmd

import (
	"github.com/spf13/cobra"

	"refine-calc/core/engine"
	"refine-calc/core/input"
	"refine-calc/core/output"
	"refine-calc/core/pricing"
	"refine-calc/core/recipe"
	"refine-calc/core/ui"
	"refine-calc/internal/config"
	"refine-calc/internal/errors"
)

type calculateOptions struct {
	format      string
	remainder   string
	depth       string
	recipes     string
	showCrafted bool
	noColor     bool
}

func (o *calculateOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "cli", "output format (cli, json, yaml, markdown)")
	cmd.Flags().StringVar(&o.remainder, "remainder", "complement", "shortfall for uneven quantities (complement, modulus)")
	cmd.Flags().StringVar(&o.depth, "depth", "single", "tier-below resolution (single, transitive)")
	cmd.Flags().StringVarP(&o.recipes, "recipes", "r", "", "HCL recipe book with multiplier overrides and prices")
	cmd.Flags().BoolVar(&o.showCrafted, "show-crafted", false, "list resources crafted along the way")
	cmd.Flags().BoolVar(&o.noColor, "no-color", false, "disable colored output")
}

// merge fills every flag the user did not set from the loaded configuration
func (o *calculateOptions) merge(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("format") {
		o.format = cfg.Output.Format
	}
	if !flags.Changed("remainder") {
		o.remainder = cfg.Calculation.Remainder
	}
	if !flags.Changed("depth") {
		o.depth = cfg.Calculation.Depth
	}
	if !flags.Changed("recipes") {
		o.recipes = cfg.Recipes.Path
	}
	if !flags.Changed("show-crafted") {
		o.showCrafted = cfg.Output.ShowCrafted
	}
	if !flags.Changed("no-color") {
		o.noColor = cfg.Output.NoColor
	}
}

func newCalculateCmd() *cobra.Command {
	opts := &calculateOptions{}
	cmd := &cobra.Command{
		Use:   "calculate [tokens...]",
		Short: "List what to buy to refine the resources you own",
		Long: `Calculate the resources to buy so that every owned resource can be refined.

Each token is ` + input.Usage + `. The enchantment is optional and is ignored
for tiers 2 and 3.

Examples:
  refine-calc calculate 100ore4
  refine-calc calculate 40wood6.2 10plank5.2 --show-crafted
  refine-calc calculate --recipes book.hcl --format markdown 100hide4`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd, args, opts)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func runCalculate(cmd *cobra.Command, args []string, opts *calculateOptions) error {
	if wantsUsage(args) {
		printUsage(cmd.OutOrStdout())
		return nil
	}

	opts.merge(cmd, config.Get())

	haves, err := input.ParseAll(args)
	if err != nil {
		reportMalformed(cmd, err, opts.noColor)
		return errReported
	}

	book, err := loadBook(opts.recipes)
	if err != nil {
		return err
	}

	remainder, err := engine.ParseRemainderPolicy(opts.remainder)
	if err != nil {
		return err
	}
	depth, err := engine.ParseDepthPolicy(opts.depth)
	if err != nil {
		return err
	}

	formatter, err := output.Get(output.Format(opts.format), opts.noColor)
	if err != nil {
		return err
	}

	eng, err := engine.New(engine.Config{
		Multipliers: book.Multipliers,
		Remainder:   remainder,
		Depth:       depth,
	})
	if err != nil {
		return err
	}

	result, err := eng.Run(haves)
	if err != nil {
		return err
	}

	var est *pricing.Estimate
	if book.HasPrices() {
		est = pricing.EstimateNeeds(result.Needs, book)
	}

	return formatter.Render(cmd.OutOrStdout(), output.NewReport(result, est, opts.showCrafted))
}

func wantsUsage(args []string) bool {
	if len(args) == 0 {
		return true
	}
	for _, arg := range args {
		if arg == "help" {
			return true
		}
	}
	return false
}

func loadBook(path string) (*recipe.Book, error) {
	if path == "" {
		return recipe.Default(), nil
	}
	return recipe.Load(path)
}

// reportMalformed prints one line per bad token
func reportMalformed(cmd *cobra.Command, err error, noColor bool) {
	w := ui.NewWriter(cmd.ErrOrStderr(), noColor)
	for _, e := range input.Errors(err) {
		if de, ok := errors.As(e); ok {
			w.Error("%s", de.Message)
			continue
		}
		w.Error("%v", e)
	}
}
