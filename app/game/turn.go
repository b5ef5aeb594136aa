package game

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// JailDoubles is the number of consecutive doubles that sends a player to jail.
const JailDoubles = 3

// State is where a turn is in its lifecycle.
type State int

const (
	StateNotStarted State = iota
	StateRolling
	StateMoved
	StateSentToJail
	StateEnded
)

var stateNames = map[State]string{
	StateNotStarted: "NOT_STARTED",
	StateRolling:    "ROLLING",
	StateMoved:      "MOVED",
	StateSentToJail: "SENT_TO_JAIL",
	StateEnded:      "ENDED",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("STATE_%d", int(s))
}

// TurnReport describes one call to Take. It is returned even when the turn fails.
type TurnReport struct {
	Player  Player
	Start   int
	Final   int
	Rolls   []Roll
	Doubles int
	// Outcome is StateMoved or StateSentToJail once at least one roll happened.
	Outcome State
	State   State
	Begin   SweepResult
	End     SweepResult
}

// Moved sums every roll that actually moved the token.
func (r TurnReport) Moved() int {
	if r.Outcome == StateSentToJail {
		return 0
	}
	total := 0
	for _, roll := range r.Rolls {
		total += roll.Total()
	}
	return total
}

// Turn runs a player's turn: sweep, roll until no doubles (or jail), sweep.
type Turn struct {
	mu      sync.Mutex
	cup     *Cup
	board   *Board
	manager *PropertyManager
	log     logrus.FieldLogger
}

func NewTurn(cup *Cup, board *Board, manager *PropertyManager, log logrus.FieldLogger) *Turn {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Turn{cup: cup, board: board, manager: manager, log: log}
}

// Begin runs the start-of-turn sweep.
func (t *Turn) Begin(player Player) (SweepResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.manager.Sweep(player)
}

// End runs the end-of-turn sweep.
func (t *Turn) End(player Player) (SweepResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.manager.Sweep(player)
}

// Take plays a full turn. A failed landing aborts the turn before the closing sweep.
func (t *Turn) Take(player Player) (TurnReport, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	log := t.log.WithField("player", player)
	if !t.board.Seated(player) {
		return TurnReport{Player: player, State: StateNotStarted}, fmt.Errorf("take turn: %s: %w", player, ErrUnknownPlayer)
	}
	rep := TurnReport{Player: player, Start: t.board.GetPlayerLocation(player), State: StateNotStarted}
	log.WithField("position", rep.Start).Debug("turn started")

	var err error
	if rep.Begin, err = t.manager.Sweep(player); err != nil {
		rep.Final = rep.Start
		return rep, fmt.Errorf("begin turn for %s: %w", player, err)
	}

	rep.State = StateRolling
	for i := 0; i < JailDoubles; i++ {
		roll := t.cup.Roll()
		rep.Rolls = append(rep.Rolls, roll)
		if roll.IsDoubles() {
			rep.Doubles++
		}
		if rep.Doubles == JailDoubles {
			t.board.SendToJail(player)
			rep.Outcome = StateSentToJail
			break
		}

		pos := t.board.Move(player, roll.Total())
		rep.Outcome = StateMoved
		if err := t.board.LandOn(player); err != nil {
			rep.Final = t.board.GetPlayerLocation(player)
			return rep, fmt.Errorf("%s landing on %d: %w", player, pos, err)
		}
		if !roll.IsDoubles() {
			break
		}
		log.WithField("doubles", rep.Doubles).Debug("rolled doubles, rolling again")
	}
	rep.State = rep.Outcome

	if rep.End, err = t.manager.Sweep(player); err != nil {
		rep.Final = t.board.GetPlayerLocation(player)
		return rep, fmt.Errorf("end turn for %s: %w", player, err)
	}
	rep.Final = t.board.GetPlayerLocation(player)
	rep.State = StateEnded
	log.WithFields(logrus.Fields{"position": rep.Final, "outcome": rep.Outcome}).Debug("turn ended")
	return rep, nil
}
