package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Space is anything a token can come to rest on.
type Space interface {
	LandOn(player Player) error
}

// Board maps each player to a position on a fixed ring of spaces.
type Board struct {
	spaces    []Space
	positions map[Player]int
	jail      int
	log       logrus.FieldLogger
}

// NewBoard places every player at start. jail is the just-visiting index SendToJail uses.
func NewBoard(spaces []Space, players []Player, start, jail int, log logrus.FieldLogger) (*Board, error) {
	if len(spaces) == 0 {
		return nil, fmt.Errorf("empty board: %w", ErrInvalidOperation)
	}
	if start < 0 || start >= len(spaces) || jail < 0 || jail >= len(spaces) {
		return nil, fmt.Errorf("start %d / jail %d outside board of %d: %w", start, jail, len(spaces), ErrInvalidOperation)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	positions := make(map[Player]int, len(players))
	for _, p := range players {
		positions[p] = start
	}
	return &Board{spaces: spaces, positions: positions, jail: jail, log: log}, nil
}

func (b *Board) Size() int { return len(b.spaces) }

func (b *Board) JailLocation() int { return b.jail }

// SpaceAt returns the space at position, wrapped onto the board.
func (b *Board) SpaceAt(position int) Space {
	return b.spaces[b.wrap(position)]
}

// Seated reports whether the player was placed on the board at construction.
func (b *Board) Seated(player Player) bool {
	_, ok := b.positions[player]
	return ok
}

// Move advances the player. Passing Go pays nothing here; only landing on it does.
// Unseated players are not moved and get -1.
func (b *Board) Move(player Player, spaces int) int {
	cur, ok := b.positions[player]
	if !ok {
		return -1
	}
	pos := b.wrap(cur + spaces)
	b.positions[player] = pos
	b.log.WithFields(logrus.Fields{"player": player, "position": pos}).Debug("moved")
	return pos
}

// Place puts the player directly on position without a landing effect.
func (b *Board) Place(player Player, position int) {
	if b.Seated(player) {
		b.positions[player] = b.wrap(position)
	}
}

// LandOn applies the occupied space's effect.
func (b *Board) LandOn(player Player) error {
	pos, ok := b.positions[player]
	if !ok {
		return fmt.Errorf("land %s: %w", player, ErrUnknownPlayer)
	}
	return b.spaces[pos].LandOn(player)
}

func (b *Board) GetPlayerLocation(player Player) int {
	return b.positions[player]
}

// SendToJail relocates the player to jail without triggering the jail space.
func (b *Board) SendToJail(player Player) {
	if !b.Seated(player) {
		return
	}
	b.positions[player] = b.jail
	b.log.WithField("player", player).Info("sent to jail")
}

func (b *Board) wrap(position int) int {
	n := len(b.spaces)
	return ((position % n) + n) % n
}
