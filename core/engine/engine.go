// Package engine provides the refining calculation engine.
// The CLI is a thin wrapper around this engine.
package engine

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"refine-calc/core/ledger"
	"refine-calc/core/resource"
	"refine-calc/core/types"
	"refine-calc/internal/errors"
	"refine-calc/internal/logging"
)

// RemainderPolicy decides how a raw quantity that does not divide evenly by
// the tier multiplier is turned into a shortfall need
type RemainderPolicy string

const (
	// RemainderComplement records the raw units missing to complete the last batch
	RemainderComplement RemainderPolicy = "complement"

	// RemainderModulus records the leftover raw units themselves
	RemainderModulus RemainderPolicy = "modulus"
)

// DepthPolicy decides how far a tier-below requirement is resolved
type DepthPolicy string

const (
	// DepthSingle records the tier-below refined requirement as a need and stops
	DepthSingle DepthPolicy = "single"

	// DepthTransitive breaks tier-below refined requirements down into raw
	// needs, tier by tier, until a tier that consumes no refined input
	DepthTransitive DepthPolicy = "transitive"
)

// ParseRemainderPolicy validates a remainder policy name
func ParseRemainderPolicy(s string) (RemainderPolicy, error) {
	switch p := RemainderPolicy(s); p {
	case RemainderComplement, RemainderModulus:
		return p, nil
	}
	return "", errors.Newf(errors.TypeConfig, "unknown remainder policy %q", s)
}

// ParseDepthPolicy validates a depth policy name
func ParseDepthPolicy(s string) (DepthPolicy, error) {
	switch p := DepthPolicy(s); p {
	case DepthSingle, DepthTransitive:
		return p, nil
	}
	return "", errors.Newf(errors.TypeConfig, "unknown depth policy %q", s)
}

// Config configures the calculation engine
type Config struct {
	// Multipliers is the per-tier raw multiplier table
	Multipliers types.Multipliers

	// Remainder selects the shortfall convention
	Remainder RemainderPolicy

	// Depth selects single-tier or transitive resolution
	Depth DepthPolicy
}

// DefaultConfig returns the built-in table with complement remainders and
// single-tier resolution
func DefaultConfig() Config {
	return Config{
		Multipliers: types.DefaultMultipliers(),
		Remainder:   RemainderComplement,
		Depth:       DepthSingle,
	}
}

// Engine derives needs from owned resources
type Engine struct {
	config Config
}

// New creates an engine. Zero-valued fields of cfg fall back to DefaultConfig.
func New(cfg Config) (*Engine, error) {
	def := DefaultConfig()
	if cfg.Multipliers == nil {
		cfg.Multipliers = def.Multipliers
	}
	if cfg.Remainder == "" {
		cfg.Remainder = def.Remainder
	}
	if cfg.Depth == "" {
		cfg.Depth = def.Depth
	}

	if err := cfg.Multipliers.Validate(); err != nil {
		return nil, errors.Config("invalid multiplier table", err)
	}
	if _, err := ParseRemainderPolicy(string(cfg.Remainder)); err != nil {
		return nil, err
	}
	if _, err := ParseDepthPolicy(string(cfg.Depth)); err != nil {
		return nil, err
	}

	return &Engine{config: cfg}, nil
}

// Config returns the effective configuration
func (e *Engine) Config() Config {
	return e.config
}

func (e *Engine) multiplier(t types.Tier) (int, error) {
	m, ok := e.config.Multipliers.Of(t)
	if !ok || m < 1 {
		return 0, errors.Newf(errors.TypeConfig, "no multiplier for tier %d", t)
	}
	return m, nil
}

func (e *Engine) newResource(ench types.Enchantment, t types.Tier, rt types.ResourceType, q int) *resource.Resource {
	return resource.NewWith(e.config.Multipliers, ench, t, rt, q)
}

// Calculate records the crafted supply and needs implied by owning r.
// Refined input is first expressed as raw units at the same tier, then the
// raw amount is descended one tier.
func (e *Engine) Calculate(totals *ledger.Totals, r *resource.Resource) error {
	return e.calculate(totals, r, true)
}

// calculate is Calculate with control over the craft at r's own tier. Run
// records refined haves as supply up front, so their descent must not craft
// the same units a second time.
func (e *Engine) calculate(totals *ledger.Totals, r *resource.Resource, craft bool) error {
	raw, err := e.Normalize(r)
	if err != nil {
		return err
	}
	return e.descend(totals, raw, craft)
}

// Normalize expresses r as raw units: one refined unit at tier t costs
// multiplier[t] raw units of the counterpart type. Raw input is returned as a copy.
func (e *Engine) Normalize(r *resource.Resource) (*resource.Resource, error) {
	if !r.IsRefined() {
		return e.newResource(r.Enchantment(), r.Tier(), r.Type(), r.Quantity()), nil
	}

	m, err := e.multiplier(r.Tier())
	if err != nil {
		return nil, err
	}
	q, err := scale(r, m)
	if err != nil {
		return nil, err
	}
	return e.newResource(r.Enchantment(), r.Tier(), r.Type().Raw(), q), nil
}

// Descend records what it takes to refine all of raw at its tier:
// make = ceil(q/m) refined units are crafted at the tier, each consuming the
// recipe's refined input from the tier below (recorded as a need), and any
// uneven remainder is recorded as a raw shortfall at the tier itself.
func (e *Engine) Descend(totals *ledger.Totals, raw *resource.Resource) error {
	return e.descend(totals, raw, true)
}

func (e *Engine) descend(totals *ledger.Totals, raw *resource.Resource, craft bool) error {
	if raw.IsRefined() {
		return errors.Internal(fmt.Sprintf("descend called with refined %s", raw.Identity()), nil)
	}

	tier := raw.Tier()
	m, err := e.multiplier(tier)
	if err != nil {
		return err
	}

	q := raw.Quantity()
	toMake := CeilDiv(q, m)
	refinedType := raw.Type().Refined()
	recipe := resource.RecipeFor(e.config.Multipliers, tier)

	logging.Debug("descend",
		zap.Stringer("identity", raw.Identity()),
		zap.Int("quantity", q),
		zap.Int("multiplier", m),
		zap.Int("make", toMake),
	)

	if below, ok := tier.Below(); ok && recipe.Refined > 0 {
		lower := e.newResource(raw.Enchantment(), below, refinedType, toMake*recipe.Refined)
		if err := e.require(totals, lower); err != nil {
			return err
		}
	}

	if craft {
		if _, err := totals.Craft(e.newResource(raw.Enchantment(), tier, refinedType, toMake)); err != nil {
			return err
		}
	}

	if shortfall := e.Shortfall(q, m); shortfall > 0 {
		logging.Debug("shortfall",
			zap.Stringer("identity", raw.Identity()),
			zap.Int("shortfall", shortfall),
		)
		if _, err := totals.AddNeed(e.newResource(raw.Enchantment(), tier, raw.Type(), shortfall)); err != nil {
			return err
		}
	}

	return nil
}

// Shortfall returns the raw need for an uneven quantity under the configured policy
func (e *Engine) Shortfall(q, m int) int {
	rem := q % m
	if rem == 0 {
		return 0
	}
	if e.config.Remainder == RemainderModulus {
		return rem
	}
	return m - rem
}

// require records a tier-below refined requirement according to the depth policy
func (e *Engine) require(totals *ledger.Totals, need *resource.Resource) error {
	if e.config.Depth != DepthTransitive {
		_, err := totals.AddNeed(need)
		return err
	}
	return e.resolve(totals, need)
}

// resolve breaks a refined requirement down into raw needs, one tier per
// iteration. Crafted supply at each tier covers what it can first.
func (e *Engine) resolve(totals *ledger.Totals, need *resource.Resource) error {
	cur := need
	for cur.Quantity() > 0 {
		uncovered := cur
		if _, ok := totals.CraftedOf(cur.Identity()); ok {
			var err error
			if uncovered, err = totals.Consume(cur); err != nil {
				return err
			}
			if uncovered.Quantity() == 0 {
				return nil
			}
		}

		tier := cur.Tier()
		m, err := e.multiplier(tier)
		if err != nil {
			return err
		}

		q, err := scale(uncovered, m)
		if err != nil {
			return err
		}
		rawNeed := e.newResource(cur.Enchantment(), tier, cur.Type().Raw(), q)
		if _, err := totals.AddNeed(rawNeed); err != nil {
			return err
		}

		recipe := resource.RecipeFor(e.config.Multipliers, tier)
		below, ok := tier.Below()
		if !ok || recipe.Refined == 0 {
			return nil
		}
		cur = e.newResource(cur.Enchantment(), below, cur.Type(), uncovered.Quantity()*recipe.Refined)
	}
	return nil
}

// CeilDiv returns ceil(q/m) for non-negative q and positive m
func CeilDiv(q, m int) int {
	n := q / m
	if q%m != 0 {
		n++
	}
	return n
}

// scale returns r's quantity times factor, or an overflow error
func scale(r *resource.Resource, factor int) (int, error) {
	q := r.Quantity()
	if factor > 0 && q > math.MaxInt/factor {
		return 0, errors.Overflow(r.Identity(), q, factor)
	}
	return q * factor, nil
}
