package game

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

const (
	// SweepThreshold splits the sweep: below it holdings are mortgaged, at or above it they are lifted.
	SweepThreshold = 200
	mortgageNum    = 9
	mortgageDen    = 10
)

// MortgageValue is what the bank lends against a space.
func MortgageValue(price int) int {
	return price * mortgageNum / mortgageDen
}

// SweepResult records what one sweep did. Skipped holds spaces whose lift was unaffordable.
type SweepResult struct {
	Player      Player
	Balance     int
	Mortgaged   []*Ownable
	Unmortgaged []*Ownable
	Skipped     []*Ownable
}

// PropertyManager tracks every ownable space and settles mortgages between turns.
type PropertyManager struct {
	banker *Banker
	spaces []*Ownable
	log    logrus.FieldLogger
}

func NewPropertyManager(banker *Banker, log logrus.FieldLogger) *PropertyManager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &PropertyManager{banker: banker, log: log}
}

// Manage registers spaces; they are kept in board position order.
func (m *PropertyManager) Manage(spaces ...*Ownable) {
	m.spaces = append(m.spaces, spaces...)
	sort.SliceStable(m.spaces, func(i, j int) bool {
		return m.spaces[i].Position < m.spaces[j].Position
	})
}

// Holdings lists the spaces player owns in board order.
func (m *PropertyManager) Holdings(player Player) []*Ownable {
	var out []*Ownable
	for _, s := range m.spaces {
		if owner, ok := s.Owner(); ok && owner == player {
			out = append(out, s)
		}
	}
	return out
}

// Sweep mortgages every unmortgaged holding when the player is short of SweepThreshold,
// crediting 90% of the price each, or else lifts every mortgage at the full price.
// An unaffordable lift is skipped and reported; later spaces are still tried.
func (m *PropertyManager) Sweep(player Player) (SweepResult, error) {
	res := SweepResult{Player: player, Balance: m.banker.GetBalance(player)}
	if res.Balance < SweepThreshold {
		return res, m.mortgageAll(player, &res)
	}
	return res, m.liftAll(player, &res)
}

func (m *PropertyManager) mortgageAll(player Player, res *SweepResult) error {
	for _, s := range m.Holdings(player) {
		if s.IsMortgaged() {
			continue
		}
		if err := s.Mortgage(); err != nil {
			return err
		}
		amount := MortgageValue(s.Price)
		if err := m.banker.Pay(player, amount); err != nil {
			return fmt.Errorf("mortgage %s: %w", s.Name, err)
		}
		res.Mortgaged = append(res.Mortgaged, s)
		m.log.WithFields(logrus.Fields{"player": player, "space": s.Name, "amount": amount}).Info("mortgaged")
	}
	return nil
}

func (m *PropertyManager) liftAll(player Player, res *SweepResult) error {
	for _, s := range m.Holdings(player) {
		if !s.IsMortgaged() {
			continue
		}
		err := m.banker.Charge(player, s.Price)
		if errors.Is(err, ErrInsufficientFunds) {
			res.Skipped = append(res.Skipped, s)
			m.log.WithFields(logrus.Fields{"player": player, "space": s.Name, "amount": s.Price}).Warn("cannot afford to lift mortgage")
			continue
		}
		if err != nil {
			return fmt.Errorf("lift mortgage on %s: %w", s.Name, err)
		}
		if err := s.Unmortgage(); err != nil {
			return err
		}
		res.Unmortgaged = append(res.Unmortgaged, s)
		m.log.WithFields(logrus.Fields{"player": player, "space": s.Name, "amount": s.Price}).Info("unmortgaged")
	}
	return nil
}
