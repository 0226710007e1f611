// Package pricing estimates what buying a need listing costs.
package pricing

import (
	"github.com/shopspring/decimal"

	"refine-calc/core/resource"
	"refine-calc/core/types"
)

// PriceSource supplies unit prices by identity
type PriceSource interface {
	Price(id types.Identity) (decimal.Decimal, bool)
}

// Line is the cost of one need
type Line struct {
	Identity types.Identity  `json:"identity"`
	Name     string          `json:"name"`
	Text     string          `json:"text"`
	Quantity int             `json:"quantity"`
	Each     decimal.Decimal `json:"each"`
	Total    decimal.Decimal `json:"total"`
	Priced   bool            `json:"priced"`
}

// Estimate is the cost of a full need listing
type Estimate struct {
	Lines    []Line          `json:"lines"`
	Total    decimal.Decimal `json:"total"`
	Unpriced int             `json:"unpriced"`
}

// EstimateNeeds prices every need. Needs without a price contribute nothing
// to the total and are counted as unpriced.
func EstimateNeeds(needs []*resource.Resource, prices PriceSource) *Estimate {
	est := &Estimate{
		Lines: make([]Line, 0, len(needs)),
		Total: decimal.Zero,
	}
	for _, need := range needs {
		line := Line{
			Identity: need.Identity(),
			Name:     need.Name(),
			Text:     need.String(),
			Quantity: need.Quantity(),
			Each:     decimal.Zero,
			Total:    decimal.Zero,
		}
		if each, ok := prices.Price(need.Identity()); ok {
			line.Priced = true
			line.Each = each
			line.Total = each.Mul(decimal.NewFromInt(int64(need.Quantity())))
			est.Total = est.Total.Add(line.Total)
		} else {
			est.Unpriced++
		}
		est.Lines = append(est.Lines, line)
	}
	return est
}
