package game

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Go pays its salary to a player landing exactly on it.
type Go struct {
	Salary int
	Banker *Banker
}

func (g *Go) LandOn(player Player) error {
	return g.Banker.Pay(player, g.Salary)
}

// Tax charges a fixed amount.
type Tax struct {
	Name   string
	Amount int
	Banker *Banker
}

func (t *Tax) LandOn(player Player) error {
	if err := t.Banker.Charge(player, t.Amount); err != nil {
		return fmt.Errorf("%s: %w", t.Name, err)
	}
	return nil
}

// GoToJail relocates the lander to jail.
type GoToJail struct {
	Board *Board
}

func (g *GoToJail) LandOn(player Player) error {
	g.Board.SendToJail(player)
	return nil
}

// Idle covers jail, just visiting and free parking.
type Idle struct {
	Name string
}

func (Idle) LandOn(Player) error { return nil }

// CardAction is what a drawn card does.
type CardAction string

const (
	CardChange CardAction = "change"
	CardGoto   CardAction = "goto"
	CardJail   CardAction = "jail"
)

type Card struct {
	Info    string
	Action  CardAction
	Payload int
}

// Deck hands out cards in order and starts over once exhausted.
type Deck struct {
	cards []Card
	next  int
}

func NewDeck(cards []Card) *Deck {
	c := make([]Card, len(cards))
	copy(c, cards)
	return &Deck{cards: c}
}

func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
	d.next = 0
}

func (d *Deck) Draw() (Card, bool) {
	if d == nil || len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[d.next]
	d.next = (d.next + 1) % len(d.cards)
	return c, true
}

func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.cards)
}

// CardSpace draws a card from its deck (community chest, chance) and applies it.
// Goto targets must not be card spaces themselves; the board factory rejects such decks.
type CardSpace struct {
	Name   string
	Deck   *Deck
	Banker *Banker
	Board  *Board
	Log    logrus.FieldLogger
}

func (c *CardSpace) LandOn(player Player) error {
	card, ok := c.Deck.Draw()
	if !ok {
		return nil
	}
	if c.Log != nil {
		c.Log.WithFields(logrus.Fields{"player": player, "space": c.Name, "card": card.Info}).Info("drew card")
	}
	switch card.Action {
	case CardChange:
		if card.Payload >= 0 {
			return c.Banker.Pay(player, card.Payload)
		}
		if err := c.Banker.Charge(player, -card.Payload); err != nil {
			return fmt.Errorf("%s: %w", card.Info, err)
		}
		return nil
	case CardGoto:
		c.Board.Place(player, card.Payload)
		return c.Board.LandOn(player)
	case CardJail:
		c.Board.SendToJail(player)
		return nil
	}
	return fmt.Errorf("card %q action %q: %w", card.Info, card.Action, ErrInvalidOperation)
}
