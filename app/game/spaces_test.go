package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGo_PaysSalaryOnLanding(t *testing.T) {
	banker := NewBanker([]Player{horse}, 1500, quietLogger())
	g := &Go{Salary: 200, Banker: banker}

	require.NoError(t, g.LandOn(horse))
	assert.Equal(t, 1700, banker.GetBalance(horse))
}

func TestTax_ChargesAmount(t *testing.T) {
	banker := NewBanker([]Player{horse}, 1500, quietLogger())
	tax := &Tax{Name: "Luxury Tax", Amount: 100, Banker: banker}

	require.NoError(t, tax.LandOn(horse))
	assert.Equal(t, 1400, banker.GetBalance(horse))

	poor := NewBanker([]Player{horse}, 10, quietLogger())
	err := (&Tax{Name: "Income Tax", Amount: 200, Banker: poor}).LandOn(horse)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestGoToJail_Relocates(t *testing.T) {
	b, recs := recordingBoard(t, 40, 10, horse)
	b.Move(horse, 30)

	require.NoError(t, (&GoToJail{Board: b}).LandOn(horse))
	assert.Equal(t, 10, b.GetPlayerLocation(horse))
	assert.Empty(t, recs[10].landed)
}

func TestCardSpace_AppliesCardsInOrder(t *testing.T) {
	banker := NewBanker([]Player{horse}, 100, quietLogger())
	b, recs := recordingBoard(t, 40, 10, horse)
	deck := NewDeck([]Card{
		{Info: "Bank error in your favor", Action: CardChange, Payload: 200},
		{Info: "Doctor's fee", Action: CardChange, Payload: -50},
		{Info: "Advance to Boardwalk", Action: CardGoto, Payload: 39},
		{Info: "Go to jail", Action: CardJail},
	})
	chest := &CardSpace{Name: "Community Chest", Deck: deck, Banker: banker, Board: b, Log: quietLogger()}

	require.NoError(t, chest.LandOn(horse))
	assert.Equal(t, 300, banker.GetBalance(horse))

	require.NoError(t, chest.LandOn(horse))
	assert.Equal(t, 250, banker.GetBalance(horse))

	require.NoError(t, chest.LandOn(horse))
	assert.Equal(t, 39, b.GetPlayerLocation(horse))
	assert.Equal(t, []Player{horse}, recs[39].landed)

	require.NoError(t, chest.LandOn(horse))
	assert.Equal(t, 10, b.GetPlayerLocation(horse))
	assert.Empty(t, recs[10].landed)

	// deck cycles
	require.NoError(t, chest.LandOn(horse))
	assert.Equal(t, 450, banker.GetBalance(horse))
}

func TestCardSpace_EmptyDeckDoesNothing(t *testing.T) {
	banker := NewBanker([]Player{horse}, 100, quietLogger())
	space := &CardSpace{Name: "Chance", Banker: banker}

	require.NoError(t, space.LandOn(horse))
	assert.Equal(t, 100, banker.GetBalance(horse))
}

func TestCardSpace_UnknownActionIsInvalid(t *testing.T) {
	banker := NewBanker([]Player{horse}, 100, quietLogger())
	space := &CardSpace{Name: "Chance", Deck: NewDeck([]Card{{Info: "?", Action: "teleport"}}), Banker: banker}

	assert.ErrorIs(t, space.LandOn(horse), ErrInvalidOperation)
}

func TestDeck_ShuffleKeepsCards(t *testing.T) {
	deck := NewDeck([]Card{{Info: "a"}, {Info: "b"}, {Info: "c"}})
	deck.Shuffle(rand.New(rand.NewSource(7)))

	seen := map[string]bool{}
	for i := 0; i < deck.Len(); i++ {
		c, ok := deck.Draw()
		require.True(t, ok)
		seen[c.Info] = true
	}
	assert.Len(t, seen, 3)
}
