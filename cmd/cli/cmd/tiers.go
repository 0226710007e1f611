// Package cmd - tiers command
package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"refine-calc/core/recipe"
	"refine-calc/core/types"
	"refine-calc/core/ui"
	"refine-calc/internal/config"
)

func newTiersCmd() *cobra.Command {
	var (
		recipes string
		noColor bool
	)
	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Print the refining multipliers and resource names per tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			if !cmd.Flags().Changed("recipes") {
				recipes = cfg.Recipes.Path
			}
			if !cmd.Flags().Changed("no-color") {
				noColor = cfg.Output.NoColor
			}

			book, err := loadBook(recipes)
			if err != nil {
				return err
			}

			w := ui.NewWriter(cmd.OutOrStdout(), noColor)
			renderMultipliers(w, book.Multipliers)
			w.Line("")
			renderNames(w)
			if book.HasPrices() {
				w.Line("")
				renderPrices(w, book)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&recipes, "recipes", "r", "", "HCL recipe book with multiplier overrides and prices")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

func renderMultipliers(w *ui.Writer, m types.Multipliers) {
	w.Header("Multipliers:")
	table := w.NewTable("Tier", "Raw per refined", "Enchantable")
	for _, t := range types.Tiers() {
		mult, _ := m.Of(t)
		enchantable := "no"
		if t.AllowsEnchantment() {
			enchantable = "yes"
		}
		table.AddRow(t.String(), strconv.Itoa(mult), enchantable)
	}
	table.Render()
}

func renderNames(w *ui.Writer) {
	w.Header("Names:")
	for _, raw := range types.RawTypes() {
		w.SubHeader(raw.String() + " -> " + raw.Refined().String())
		table := w.NewTable("Tier", raw.String(), raw.Refined().String())
		for _, t := range types.Tiers() {
			rawName, _ := types.Names.Lookup(t, raw)
			refinedName, _ := types.Names.Lookup(t, raw.Refined())
			table.AddRow(t.String(), rawName, refinedName)
		}
		table.Render()
	}
}

func renderPrices(w *ui.Writer, book *recipe.Book) {
	w.Header("Prices:")
	table := w.NewTable("Resource", "Each")
	for _, id := range book.PricedIdentities() {
		each, _ := book.Price(id)
		table.AddRow(id.String(), each.String())
	}
	table.Render()
}
