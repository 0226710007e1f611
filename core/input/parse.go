// Package input turns command-line tokens into owned resources.
//
// A token is <quantity><type><tier> or <quantity><type><tier>.<enchantment>,
// for example 100ore4 or 20bar5.2. Every token of a batch is checked; the
// batch fails as a whole if any token is malformed.
package input

import (
	"fmt"
	"regexp"
	"strconv"

	"go.uber.org/multierr"

	"refine-calc/core/resource"
	"refine-calc/core/types"
	"refine-calc/internal/errors"
)

// Usage is the token grammar shown to users
const Usage = "[Have][Type][Tier].[Enchantment]"

// Example is a sample token
const Example = "100ore4.1"

var tokenPattern = regexp.MustCompile(`^(\d+)(\D+)(\d)(?:\.(\d))?$`)

// Parse converts one token into a resource
func Parse(token string) (*resource.Resource, error) {
	m := tokenPattern.FindStringSubmatch(token)
	if m == nil {
		return nil, errors.MalformedInput(token, fmt.Sprintf("have, type, and tier must be provided as %s, e.g. %s", Usage, Example))
	}

	quantity, err := strconv.Atoi(m[1])
	if err != nil || quantity > types.MaxQuantity {
		return nil, errors.MalformedInput(token, fmt.Sprintf("quantity %s is out of range, the most is %d", m[1], types.MaxQuantity))
	}

	rt, ok := types.ParseResourceType(m[2])
	if !ok {
		reason := fmt.Sprintf("unknown type %q", m[2])
		suggestion, found := Suggest(m[2])
		if found {
			reason += fmt.Sprintf(", did you mean %q?", suggestion)
		}
		e := errors.MalformedInput(token, reason)
		if found {
			e.WithContext(errors.KeySuggestion, suggestion)
		}
		return nil, e
	}

	tierDigit, _ := strconv.Atoi(m[3])
	tier := types.Tier(tierDigit)
	if !tier.IsValid() {
		return nil, errors.MalformedInput(token, fmt.Sprintf("tier %d is outside %d-%d", tier, types.MinTier, types.MaxTier))
	}

	ench := types.EnchantmentNone
	if m[4] != "" {
		idx, _ := strconv.Atoi(m[4])
		if ench, ok = types.EnchantmentFromIndex(idx); !ok {
			return nil, errors.MalformedInput(token, fmt.Sprintf("enchantment %d is outside 0-3", idx))
		}
	}

	return resource.New(ench, tier, rt, quantity), nil
}

// ParseAll parses every token. If any token is malformed the returned error
// combines one MALFORMED_INPUT error per bad token and no resources are returned.
func ParseAll(tokens []string) ([]*resource.Resource, error) {
	haves := make([]*resource.Resource, 0, len(tokens))
	var errs error
	for _, token := range tokens {
		r, err := Parse(token)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		haves = append(haves, r)
	}
	if errs != nil {
		return nil, errs
	}
	return haves, nil
}

// Errors splits a ParseAll error into its per-token errors
func Errors(err error) []error {
	return multierr.Errors(err)
}
