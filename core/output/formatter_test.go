package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"refine-calc/core/engine"
	"refine-calc/core/pricing"
	"refine-calc/core/resource"
	"refine-calc/core/types"
)

type fixedPrices map[types.Identity]decimal.Decimal

func (p fixedPrices) Price(id types.Identity) (decimal.Decimal, bool) {
	v, ok := p[id]
	return v, ok
}

func sampleResult(t *testing.T) *engine.Result {
	t.Helper()
	e, err := engine.New(engine.Config{})
	require.NoError(t, err)
	result, err := e.Run([]*resource.Resource{
		resource.New(types.EnchantmentNone, 4, types.TypeOre, 7),
	})
	require.NoError(t, err)
	return result
}

func TestGet(t *testing.T) {
	for _, f := range Formats() {
		formatter, err := Get(f, true)
		require.NoError(t, err)
		assert.Equal(t, f, formatter.Format())
	}

	_, err := Get("html", false)
	assert.Error(t, err)
}

func TestCLIRender(t *testing.T) {
	report := NewReport(sampleResult(t), nil, false)

	var buf bytes.Buffer
	require.NoError(t, (&CLIFormatter{NoColor: true}).Render(&buf, report))

	assert.Equal(t, "You have:\n"+
		"7 iron ore (T4)\n"+
		"\n"+
		"To use all your resources, you need to buy:\n"+
		"1 iron ore (T4)\n"+
		"4 bronze bar (T3)\n", buf.String())
}

func TestCLIRenderCraftedAndCost(t *testing.T) {
	result := sampleResult(t)
	prices := fixedPrices{
		types.Identity{Tier: 3, Type: types.TypeBar}: decimal.RequireFromString("2.5"),
	}
	report := NewReport(result, pricing.EstimateNeeds(result.Needs, prices), true)

	var buf bytes.Buffer
	require.NoError(t, (&CLIFormatter{NoColor: true}).Render(&buf, report))

	out := buf.String()
	assert.Contains(t, out, "Crafted along the way:\n4 steel bar (T4)\n")
	assert.Contains(t, out, "4 bronze bar (T3) │ 2.5  │ 10")
	assert.Contains(t, out, "1 iron ore (T4)   │ -    │ -")
	assert.Contains(t, out, "Total cost: 10")
	assert.Contains(t, out, "1 lines have no price")
}

func TestJSONRender(t *testing.T) {
	report := NewReport(sampleResult(t), nil, true)

	var buf bytes.Buffer
	require.NoError(t, (&JSONFormatter{}).Render(&buf, report))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	needs := decoded["needs"].([]interface{})
	require.Len(t, needs, 2)
	second := needs[1].(map[string]interface{})
	assert.Equal(t, "bar", second["type"])
	assert.Equal(t, "none", second["enchantment"])
	assert.Equal(t, float64(3), second["tier"])
	assert.Equal(t, "bronze bar", second["name"])
	assert.NotContains(t, decoded, "cost")
}

func TestYAMLRender(t *testing.T) {
	result := sampleResult(t)
	prices := fixedPrices{types.Identity{Tier: 4, Type: types.TypeOre}: decimal.NewFromInt(3)}
	report := NewReport(result, pricing.EstimateNeeds(result.Needs, prices), false)

	var buf bytes.Buffer
	require.NoError(t, (&YAMLFormatter{}).Render(&buf, report))

	var decoded struct {
		Needs []struct {
			Quantity    int    `yaml:"quantity"`
			Enchantment string `yaml:"enchantment"`
			Text        string `yaml:"text"`
		} `yaml:"needs"`
		Cost struct {
			Total    string `yaml:"total"`
			Unpriced int    `yaml:"unpriced"`
		} `yaml:"cost"`
		Metadata struct {
			Remainder string `yaml:"remainder"`
		} `yaml:"metadata"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Needs, 2)
	assert.Equal(t, "1 iron ore (T4)", decoded.Needs[0].Text)
	assert.Equal(t, "4 bronze bar (T3)", decoded.Needs[1].Text)
	assert.Equal(t, "none", decoded.Needs[0].Enchantment)
	assert.Equal(t, "3", decoded.Cost.Total)
	assert.Equal(t, 1, decoded.Cost.Unpriced)
	assert.Equal(t, "complement", decoded.Metadata.Remainder)
}

func TestMarkdownRender(t *testing.T) {
	report := NewReport(sampleResult(t), nil, false)

	var buf bytes.Buffer
	require.NoError(t, (&MarkdownFormatter{}).Render(&buf, report))

	out := buf.String()
	assert.Contains(t, out, "## You need to buy")
	assert.Contains(t, out, "| 4 | bronze bar | T3 | none |")
	assert.Contains(t, out, "| 1 | iron ore | T4 | none |")
	assert.NotContains(t, out, "## Cost")
}

func TestMarkdownNothingToBuy(t *testing.T) {
	report := &Report{Haves: []Entry{}, Needs: []Entry{}}

	var buf bytes.Buffer
	require.NoError(t, (&MarkdownFormatter{}).Render(&buf, report))
	assert.Contains(t, buf.String(), "_Nothing._")
}
