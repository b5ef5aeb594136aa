package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_MoveWrapsAround(t *testing.T) {
	b, _ := recordingBoard(t, 40, 10, horse)

	assert.Equal(t, 35, b.Move(horse, 35))
	assert.Equal(t, 3, b.Move(horse, 8))
	assert.Equal(t, 3, b.GetPlayerLocation(horse))
}

func TestBoard_LandOnDispatchesToOccupiedSpace(t *testing.T) {
	b, recs := recordingBoard(t, 40, 10, horse, hat)

	b.Move(horse, 7)
	require.NoError(t, b.LandOn(horse))

	assert.Equal(t, []Player{horse}, recs[7].landed)
	assert.Empty(t, recs[0].landed)
}

func TestBoard_SendToJailSkipsLandingEffect(t *testing.T) {
	b, recs := recordingBoard(t, 40, 10, horse)

	b.Move(horse, 25)
	b.SendToJail(horse)

	assert.Equal(t, 10, b.GetPlayerLocation(horse))
	assert.Empty(t, recs[10].landed)
}

func TestNewBoard_Validates(t *testing.T) {
	_, err := NewBoard(nil, []Player{horse}, 0, 0, quietLogger())
	assert.ErrorIs(t, err, ErrInvalidOperation)

	_, err = NewBoard([]Space{Idle{}}, []Player{horse}, 0, 3, quietLogger())
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestBoard_UnseatedPlayerIsRejected(t *testing.T) {
	b, recs := recordingBoard(t, 40, 10, horse)

	assert.Equal(t, -1, b.Move(hat, 5))
	b.Place(hat, 7)
	b.SendToJail(hat)
	assert.False(t, b.Seated(hat))
	assert.ErrorIs(t, b.LandOn(hat), ErrUnknownPlayer)
	assert.Empty(t, recs[0].landed)
	assert.True(t, b.Seated(horse))
}
