// Package recipe loads recipe books: HCL files that override the per-tier
// multiplier table and attach unit prices to resources.
//
//	multipliers = {
//	  "5" = 3
//	}
//
//	price "ore" {
//	  tier        = 4
//	  enchantment = 1
//	  each        = "12.5"
//	}
package recipe

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"refine-calc/core/resource"
	"refine-calc/core/types"
	"refine-calc/internal/errors"
	"refine-calc/internal/logging"
)

type bookFile struct {
	Multipliers map[string]int `hcl:"multipliers,optional"`
	Prices      []priceBlock   `hcl:"price,block"`
}

type priceBlock struct {
	Type        string `hcl:"type,label" validate:"required"`
	Tier        int    `hcl:"tier" validate:"min=2,max=8"`
	Enchantment int    `hcl:"enchantment,optional" validate:"min=0,max=3"`
	Each        string `hcl:"each" validate:"required,numeric"`
}

// Book is an effective multiplier table plus optional unit prices
type Book struct {
	// Multipliers is the built-in table with the book's overrides applied
	Multipliers types.Multipliers

	// Prices maps a resource identity to the price of one unit
	Prices map[types.Identity]decimal.Decimal

	// Source is the file the book was loaded from, empty for the built-in book
	Source string
}

// Default returns the built-in book: default multipliers, no prices
func Default() *Book {
	return &Book{
		Multipliers: types.DefaultMultipliers(),
		Prices:      make(map[types.Identity]decimal.Decimal),
	}
}

// Load reads a recipe book from an HCL file
func Load(path string) (*Book, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("failed to read recipe book", err)
	}
	return Parse(src, path)
}

// Parse decodes a recipe book from HCL source
func Parse(src []byte, filename string) (*Book, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Config("failed to parse recipe book", diags)
	}

	var raw bookFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.Config("failed to decode recipe book", diags)
	}

	book := Default()
	book.Source = filename

	overrides, err := parseMultipliers(raw.Multipliers)
	if err != nil {
		return nil, err
	}
	book.Multipliers = book.Multipliers.With(overrides)
	if err := book.Multipliers.Validate(); err != nil {
		return nil, errors.Config("invalid multipliers in recipe book", err)
	}

	validate := validator.New()
	for _, p := range raw.Prices {
		if err := validate.Struct(p); err != nil {
			return nil, errors.Config(fmt.Sprintf("invalid price for %q", p.Type), err)
		}
		id, each, err := p.resolve()
		if err != nil {
			return nil, err
		}
		if _, dup := book.Prices[id]; dup {
			return nil, errors.Newf(errors.TypeConfig, "duplicate price for %s", id)
		}
		book.Prices[id] = each
	}

	logging.Debug("loaded recipe book",
		zap.String("source", filename),
		zap.Int("multiplier_overrides", len(overrides)),
		zap.Int("prices", len(book.Prices)),
	)
	return book, nil
}

func parseMultipliers(in map[string]int) (types.Multipliers, error) {
	out := make(types.Multipliers, len(in))
	for key, v := range in {
		n, err := strconv.Atoi(key)
		if err != nil {
			return nil, errors.Newf(errors.TypeConfig, "multiplier key %q is not a tier number", key)
		}
		out[types.Tier(n)] = v
	}
	return out, nil
}

func (p priceBlock) resolve() (types.Identity, decimal.Decimal, error) {
	rt, ok := types.ParseResourceType(p.Type)
	if !ok {
		return types.Identity{}, decimal.Zero, errors.Newf(errors.TypeConfig, "price for unknown type %q", p.Type)
	}
	ench, _ := types.EnchantmentFromIndex(p.Enchantment)

	each, err := decimal.NewFromString(p.Each)
	if err != nil {
		return types.Identity{}, decimal.Zero, errors.Config(fmt.Sprintf("price for %q is not a number", p.Type), err)
	}
	if each.IsNegative() {
		return types.Identity{}, decimal.Zero, errors.Newf(errors.TypeConfig, "price for %q is negative", p.Type)
	}

	// enchantment collapses at low tiers exactly as for parsed resources
	id := resource.New(ench, types.Tier(p.Tier), rt, 0).Identity()
	return id, each, nil
}

// Price returns the unit price of an identity
func (b *Book) Price(id types.Identity) (decimal.Decimal, bool) {
	p, ok := b.Prices[id]
	return p, ok
}

// HasPrices reports whether the book prices anything
func (b *Book) HasPrices() bool {
	return len(b.Prices) > 0
}

// PricedIdentities returns the priced identities in a stable order
func (b *Book) PricedIdentities() []types.Identity {
	ids := make([]types.Identity, 0, len(b.Prices))
	for id := range b.Prices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}
