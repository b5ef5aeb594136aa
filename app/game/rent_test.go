package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtilityRent(t *testing.T) {
	banker := NewBanker([]Player{hat}, 1500, quietLogger())
	cup := NewCup(newQueueDice(t, 1, 5))
	cup.Roll()

	group := NewGroup("utilities")
	electric := NewUtility(OwnableConfig{Name: "Electric Company", Position: 12, Price: 150}, banker, cup, quietLogger())
	water := NewUtility(OwnableConfig{Name: "Water Works", Position: 28, Price: 150}, banker, cup, quietLogger())
	group.Add(electric, water)

	require.NoError(t, electric.Sell(hat))
	assert.Equal(t, 4*cup.LastRoll(), electric.Rent())

	require.NoError(t, water.Sell(hat))
	assert.Equal(t, 10*cup.LastRoll(), electric.Rent())
	assert.Equal(t, 60, water.Rent())
}

func TestRailroadRentDoublesPerRailroad(t *testing.T) {
	banker := NewBanker([]Player{hat}, 1500, quietLogger())
	group := NewGroup("railroads")
	var roads []*Ownable
	for i := 0; i < 4; i++ {
		roads = append(roads, NewRailroad(OwnableConfig{Name: "RR", Position: 5 + 10*i, Price: 200, BaseRent: 25}, banker, quietLogger()))
	}
	group.Add(roads...)

	for i, want := range []int{25, 50, 100, 200} {
		require.NoError(t, roads[i].Sell(hat))
		assert.Equal(t, want, roads[0].Rent(), "holding %d railroads", i+1)
	}
}

func TestGroupMultiplierClampsToLastMultiplier(t *testing.T) {
	rule := GroupMultiplierRentRule{Multipliers: []int{1, 3}}
	banker := NewBanker([]Player{hat}, 0, quietLogger())
	group := NewGroup("wide")
	a, b, c := property("A", 1, 60, 10, banker), property("B", 2, 60, 10, banker), property("C", 3, 60, 10, banker)
	group.Add(a, b, c)
	for _, s := range []*Ownable{a, b, c} {
		require.NoError(t, s.Sell(hat))
	}

	assert.Equal(t, 30, rule.Rent(RentContext{Space: a}))
	assert.Equal(t, 0, GroupMultiplierRentRule{}.Rent(RentContext{Space: property("Z", 0, 1, 0, banker)}))
}

func TestMonopolySwapsRentRuleWhenGroupCompletes(t *testing.T) {
	banker := NewBanker([]Player{horse, hat}, 1500, quietLogger())
	group := NewGroup("brown").WithMonopolyRule(MonopolyRent(2))
	med := property("Mediterranean Avenue", 1, 60, 2, banker)
	baltic := property("Baltic Avenue", 3, 60, 4, banker)
	group.Add(med, baltic)

	require.NoError(t, med.LandOn(hat))
	assert.Equal(t, FlatRentRule{}, med.RentRule())
	assert.Equal(t, 2, med.Rent())

	require.NoError(t, baltic.LandOn(hat))
	_, ok := group.Monopolist()
	assert.True(t, ok)
	assert.Equal(t, 4, med.Rent())
	assert.Equal(t, 8, baltic.Rent())

	require.NoError(t, baltic.Sell(horse))
	assert.Equal(t, FlatRentRule{}, med.RentRule())
	assert.Equal(t, 2, med.Rent())
}

func TestMonopolyRentMultipliers(t *testing.T) {
	assert.Equal(t, []int{1, 1, 2}, MonopolyRent(3).Multipliers)
	assert.Equal(t, []int{2}, MonopolyRent(0).Multipliers)
}
