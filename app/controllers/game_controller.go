package controllers

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/DedS3t/monopoly-engine/app/game"
	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
	"github.com/DedS3t/monopoly-engine/platform/config"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

const (
	StatusWaiting    = "waiting"
	StatusInProgress = "in progress"
	StatusOver       = "over"
)

// Publisher receives match progress. Failures are logged, never fatal to the match.
type Publisher interface {
	Start(g models.Game) error
	Publish(turn models.TurnDto, next string) error
	Finish(g models.Game) error
}

// Deps are the shared game components a match drives.
type Deps struct {
	Banker  *game.Banker
	Board   *game.Board
	Manager *game.PropertyManager
	Turn    *game.Turn
	Feed    Publisher
	Log     logrus.FieldLogger
}

// Match plays turns in seat order until one player is left or the rounds run out.
type Match struct {
	Id      string
	name    string
	players []game.Player
	retired map[game.Player]bool
	rounds  int
	round   int
	status  string
	deps    Deps
	log     logrus.FieldLogger
}

func NewMatch(name string, players []game.Player, rounds int, deps Deps) *Match {
	if deps.Log == nil {
		deps.Log = logrus.StandardLogger()
	}
	id := uuid.NewV4().String()
	return &Match{
		Id:      id,
		name:    name,
		players: players,
		retired: map[game.Player]bool{},
		rounds:  rounds,
		status:  StatusWaiting,
		deps:    deps,
		log:     deps.Log.WithField("game", id),
	}
}

// CreateGame wires a classic match from configuration.
func CreateGame(cfg config.Config, feed Publisher, log logrus.FieldLogger) (*Match, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	seed := cfg.DiceSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	players := make([]game.Player, 0, len(cfg.Players))
	for _, p := range cfg.Players {
		players = append(players, game.Player(p))
	}

	layout, err := board.LoadProperties(cfg.LayoutPath)
	if err != nil {
		return nil, err
	}
	specials, err := board.LoadSpecials(cfg.SpecialsPath)
	if err != nil {
		return nil, err
	}

	cup := game.NewCup(game.NewRandomDice(rng))
	banker := game.NewBanker(players, cfg.StartingBalance, log)
	table, err := board.Build(layout, board.Options{
		Players:  players,
		Banker:   banker,
		Dice:     cup,
		Specials: specials,
		Shuffle:  rng,
		Log:      log,
	})
	if err != nil {
		return nil, err
	}
	manager := game.NewPropertyManager(banker, log)
	manager.Manage(table.Ownables...)

	return NewMatch(cfg.GameName, players, cfg.Rounds, Deps{
		Banker:  banker,
		Board:   table.Board,
		Manager: manager,
		Turn:    game.NewTurn(cup, table.Board, manager, log),
		Feed:    feed,
		Log:     log,
	}), nil
}

// Play runs the match to completion and returns the final standings.
func (m *Match) Play() (models.Game, error) {
	m.status = StatusInProgress
	m.log.WithField("players", len(m.players)).Info("game started")
	m.publish(func(p Publisher) error { return p.Start(m.Summary()) })

	for round := 1; round <= m.rounds && m.activeCount() > 1; round++ {
		m.round = round
		for _, player := range m.players {
			if m.retired[player] {
				continue
			}
			if err := m.playTurn(player); err != nil {
				m.status = StatusOver
				return m.Summary(), err
			}
			if m.activeCount() <= 1 {
				break
			}
		}
	}
	m.status = StatusOver
	summary := m.Summary()
	m.publish(func(p Publisher) error { return p.Finish(summary) })
	m.log.WithField("round", m.round).Info("game over")
	return summary, nil
}

func (m *Match) playTurn(player game.Player) error {
	rep, err := m.deps.Turn.Take(player)
	dto := m.turnDto(rep)
	switch {
	case errors.Is(err, game.ErrInsufficientFunds):
		m.retired[player] = true
		dto.Error = err.Error()
		dto.Player.Active = false
		m.log.WithError(err).WithField("player", player).Warn("player retired")
	case err != nil:
		return fmt.Errorf("round %d: %w", m.round, err)
	}
	next := m.GetNextTurn(player)
	m.publish(func(p Publisher) error { return p.Publish(dto, string(next)) })
	return nil
}

// GetNextTurn returns the next active player after player in seat order, wrapping around.
func (m *Match) GetNextTurn(player game.Player) game.Player {
	for idx, p := range m.players {
		if p != player {
			continue
		}
		for step := 1; step <= len(m.players); step++ {
			next := m.players[(idx+step)%len(m.players)]
			if !m.retired[next] {
				return next
			}
		}
	}
	return ""
}

func (m *Match) Summary() models.Game {
	players := make([]models.PlayerDto, 0, len(m.players))
	for _, p := range m.players {
		players = append(players, m.playerDto(p))
	}
	return models.Game{Id: m.Id, Name: m.name, Status: m.status, Round: m.round, Players: players}
}

func (m *Match) playerDto(p game.Player) models.PlayerDto {
	dto := models.PlayerDto{
		Username:   string(p),
		Balance:    m.deps.Banker.GetBalance(p),
		Pos:        m.deps.Board.GetPlayerLocation(p),
		Properties: []string{},
		Active:     !m.retired[p],
	}
	for _, s := range m.deps.Manager.Holdings(p) {
		dto.Properties = append(dto.Properties, s.Name)
		if s.IsMortgaged() {
			dto.Mortgaged = append(dto.Mortgaged, s.Name)
		}
	}
	return dto
}

func (m *Match) turnDto(rep game.TurnReport) models.TurnDto {
	dto := models.TurnDto{
		Game_id: m.Id,
		Round:   m.round,
		Player:  m.playerDto(rep.Player),
		Doubles: rep.Doubles,
		Outcome: rep.Outcome.String(),
	}
	for _, r := range rep.Rolls {
		dto.Rolls = append(dto.Rolls, [2]int{r.First, r.Second})
	}
	for _, skipped := range [][]*game.Ownable{rep.Begin.Skipped, rep.End.Skipped} {
		for _, s := range skipped {
			dto.Skipped = append(dto.Skipped, s.Name)
		}
	}
	return dto
}

func (m *Match) activeCount() int {
	return len(m.players) - len(m.retired)
}

func (m *Match) publish(send func(Publisher) error) {
	if m.deps.Feed == nil {
		return
	}
	if err := send(m.deps.Feed); err != nil {
		m.log.WithError(err).Warn("publish failed")
	}
}
