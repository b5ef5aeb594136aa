package cache

import (
	"encoding/json"
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/gomodule/redigo/redis"
)

// ConnSource hands out connections; *redis.Pool is one.
type ConnSource interface {
	Get() redis.Conn
}

// TurnFeed mirrors match progress into redis for spectators. It only ever writes:
//
//	<game>          id of the player whose turn is next
//	<game>.order    turn order
//	<game>.status   match status
//	<game>.<player> hash with bal and pos
//	<game>.turns    pub/sub channel carrying each TurnDto as JSON
type TurnFeed struct {
	conns ConnSource
}

func NewTurnFeed(conns ConnSource) *TurnFeed {
	return &TurnFeed{conns: conns}
}

func (f *TurnFeed) Start(game models.Game) error {
	conn := f.conns.Get()
	defer conn.Close()

	order := fmt.Sprintf("%s.order", game.Id)
	if err := Del(order, conn); err != nil {
		return err
	}
	ids := make([]interface{}, 0, len(game.Players))
	for _, p := range game.Players {
		ids = append(ids, p.Username)
		if err := writePlayer(game.Id, p, conn); err != nil {
			return err
		}
	}
	if err := RPUSH(order, ids, conn); err != nil {
		return err
	}
	if len(game.Players) > 0 {
		if err := Set(game.Id, game.Players[0].Username, conn); err != nil {
			return err
		}
	}
	return Set(fmt.Sprintf("%s.status", game.Id), game.Status, conn)
}

// Publish records the turn and announces who plays next.
func (f *TurnFeed) Publish(turn models.TurnDto, next string) error {
	conn := f.conns.Get()
	defer conn.Close()

	if err := writePlayer(turn.Game_id, turn.Player, conn); err != nil {
		return err
	}
	payload, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("encode turn: %w", err)
	}
	if err := PUBLISH(fmt.Sprintf("%s.turns", turn.Game_id), payload, conn); err != nil {
		return err
	}
	if next == "" {
		return nil
	}
	return Set(turn.Game_id, next, conn)
}

func (f *TurnFeed) Finish(game models.Game) error {
	conn := f.conns.Get()
	defer conn.Close()
	return Set(fmt.Sprintf("%s.status", game.Id), game.Status, conn)
}

func writePlayer(gameID string, p models.PlayerDto, conn redis.Conn) error {
	return HSET(fmt.Sprintf("%s.%s", gameID, p.Username), conn, "bal", p.Balance, "pos", p.Pos)
}
