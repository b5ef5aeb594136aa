package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Player is the opaque token balances and positions are keyed by.
type Player string

// Banker owns every cash balance in the game. Nothing else reads or writes balances.
type Banker struct {
	balances map[Player]int
	log      logrus.FieldLogger
}

func NewBanker(players []Player, startingBalance int, log logrus.FieldLogger) *Banker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	balances := make(map[Player]int, len(players))
	for _, p := range players {
		balances[p] = startingBalance
	}
	return &Banker{balances: balances, log: log}
}

// Charge debits the player. The balance may reach zero but never go below it.
func (b *Banker) Charge(player Player, amount int) error {
	bal, err := b.debitable(player, amount)
	if err != nil {
		return err
	}
	b.balances[player] = bal - amount
	b.log.WithFields(logrus.Fields{"player": player, "amount": amount}).Debug("charged")
	return nil
}

// Pay credits the player with money coming from the bank.
func (b *Banker) Pay(player Player, amount int) error {
	if err := b.check(player, amount); err != nil {
		return err
	}
	b.balances[player] += amount
	b.log.WithFields(logrus.Fields{"player": player, "amount": amount}).Debug("paid")
	return nil
}

// Transfer moves money between two players. Both legs are validated before either is applied.
func (b *Banker) Transfer(from, to Player, amount int) error {
	if _, ok := b.balances[to]; !ok {
		return fmt.Errorf("transfer to %s: %w", to, ErrUnknownPlayer)
	}
	bal, err := b.debitable(from, amount)
	if err != nil {
		return err
	}
	b.balances[from] = bal - amount
	b.balances[to] += amount
	b.log.WithFields(logrus.Fields{"from": from, "to": to, "amount": amount}).Debug("transferred")
	return nil
}

func (b *Banker) GetBalance(player Player) int {
	return b.balances[player]
}

func (b *Banker) check(player Player, amount int) error {
	if amount < 0 {
		return fmt.Errorf("amount %d for %s: %w", amount, player, ErrInvalidOperation)
	}
	if _, ok := b.balances[player]; !ok {
		return fmt.Errorf("%s: %w", player, ErrUnknownPlayer)
	}
	return nil
}

func (b *Banker) debitable(player Player, amount int) (int, error) {
	if err := b.check(player, amount); err != nil {
		return 0, err
	}
	bal := b.balances[player]
	if bal < amount {
		return 0, fmt.Errorf("%s has %d, needs %d: %w", player, bal, amount, ErrInsufficientFunds)
	}
	return bal, nil
}
