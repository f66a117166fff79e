package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGoals_Scenario(t *testing.T) {
	g := ComputeGoals(newState())

	assert.True(t, g.Reserve.Equal(dec("500")), "reserve %s", g.Reserve)
	assert.True(t, g.Pool.Equal(dec("4500")), "pool %s", g.Pool)
	require.Len(t, g.ByName, 2)
	assert.True(t, g.ByName["Moradia"].Equal(dec("3000")), "Moradia %s", g.ByName["Moradia"])
	assert.True(t, g.ByName["Mercado"].Equal(dec("1500")), "Mercado %s", g.ByName["Mercado"])
}

func TestComputeGoals_EmptyProfile(t *testing.T) {
	s := newState()
	s.Profile = map[string]decimal.Decimal{}

	g := ComputeGoals(s)
	assert.Empty(t, g.ByName)
	assert.True(t, g.Reserve.Equal(dec("500")))
	assert.True(t, g.Pool.Equal(dec("4500")))
}

func TestComputeGoals_NilProfile(t *testing.T) {
	s := newState()
	s.Profile = nil

	g := ComputeGoals(s)
	assert.NotNil(t, g.ByName)
	assert.Empty(t, g.ByName)
}

func TestComputeGoals_AllZeroWeightsUseScale(t *testing.T) {
	s := newState()
	s.Profile = map[string]decimal.Decimal{"Moradia": decimal.Zero, "Mercado": decimal.Zero}

	g := ComputeGoals(s)
	require.Len(t, g.ByName, 2)
	assert.True(t, g.ByName["Moradia"].IsZero())
	assert.True(t, g.ByName["Mercado"].IsZero())
}

func TestComputeGoals_ZeroSalary(t *testing.T) {
	s := newState()
	s.Salary = decimal.Zero

	g := ComputeGoals(s)
	assert.True(t, g.Reserve.IsZero())
	assert.True(t, g.Pool.IsZero())
	assert.True(t, g.ByName["Moradia"].IsZero())
}

func TestComputeGoals_OnlyProfileNames(t *testing.T) {
	s := newState()
	s.Profile = map[string]decimal.Decimal{"Lazer": dec("12")}

	g := ComputeGoals(s)
	_, ok := g.ByName["Moradia"]
	assert.False(t, ok, "categories without a weight get no goal")
	assert.True(t, g.ByName["Lazer"].Equal(dec("4500")), "single weight takes the whole pool")
}

func TestComputeGoals_SumsToPool(t *testing.T) {
	s := newState()
	s.Salary = dec("7321.45")
	s.Profile = map[string]decimal.Decimal{"a": dec("18"), "b": dec("15"), "c": dec("30"), "d": dec("27")}

	g := ComputeGoals(s)
	sum := decimal.Zero
	for _, v := range g.ByName {
		sum = sum.Add(v)
	}
	assert.True(t, sum.Sub(g.Pool).Abs().LessThan(dec("0.000001")), "sum %s pool %s", sum, g.Pool)
}
