package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Kind tells the ownable variants apart for presentation; rent never switches on it.
type Kind int

const (
	KindProperty Kind = iota
	KindRailroad
	KindUtility
)

var kindNames = map[Kind]string{
	KindProperty: "PROPERTY",
	KindRailroad: "RAILROAD",
	KindUtility:  "UTILITY",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND_%d", int(k))
}

// OwnableConfig is the static description of a purchasable space.
type OwnableConfig struct {
	Name     string
	Position int
	Price    int
	BaseRent int
}

// Ownable is a space that can be bought, charges rent through its RentRule and can be mortgaged.
type Ownable struct {
	OwnableConfig
	kind Kind

	owner     Player
	owned     bool
	mortgaged bool

	group    *Group
	rule     RentRule
	baseRule RentRule

	banker *Banker
	dice   RollReader
	log    logrus.FieldLogger
}

func newOwnable(cfg OwnableConfig, kind Kind, rule RentRule, banker *Banker, dice RollReader, log logrus.FieldLogger) *Ownable {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Ownable{
		OwnableConfig: cfg,
		kind:          kind,
		rule:          rule,
		baseRule:      rule,
		banker:        banker,
		dice:          dice,
		log:           log,
	}
}

// NewProperty creates a color property charging flat base rent until its group says otherwise.
func NewProperty(cfg OwnableConfig, banker *Banker, log logrus.FieldLogger) *Ownable {
	return newOwnable(cfg, KindProperty, FlatRentRule{}, banker, nil, log)
}

// NewRailroad creates a railroad whose rent doubles with each railroad the owner holds.
func NewRailroad(cfg OwnableConfig, banker *Banker, log logrus.FieldLogger) *Ownable {
	return newOwnable(cfg, KindRailroad, GroupMultiplierRentRule{Multipliers: []int{1, 2, 4, 8}}, banker, nil, log)
}

// NewUtility creates a utility charging a multiple of the last roll read from dice.
func NewUtility(cfg OwnableConfig, banker *Banker, dice RollReader, log logrus.FieldLogger) *Ownable {
	return newOwnable(cfg, KindUtility, UtilityRent, banker, dice, log)
}

func (s *Ownable) Kind() Kind { return s.kind }

func (s *Ownable) Group() *Group { return s.group }

func (s *Ownable) Owner() (Player, bool) { return s.owner, s.owned }

func (s *Ownable) IsMortgaged() bool { return s.mortgaged }

func (s *Ownable) RentRule() RentRule { return s.rule }

func (s *Ownable) ChangeRentRule(rule RentRule) {
	s.rule = rule
}

// Rent prices a landing with the active rule and the last roll.
func (s *Ownable) Rent() int {
	ctx := RentContext{Space: s}
	if s.dice != nil {
		ctx.Roll = s.dice.LastRoll()
	}
	return s.rule.Rent(ctx)
}

// LandOn buys the space when it is for sale and otherwise collects rent from non-owners.
// Mortgaged spaces have no effect.
func (s *Ownable) LandOn(player Player) error {
	fields := logrus.Fields{"player": player, "space": s.Name}
	switch {
	case s.mortgaged:
		return nil
	case !s.owned:
		if err := s.banker.Charge(player, s.Price); err != nil {
			return fmt.Errorf("buy %s: %w", s.Name, err)
		}
		s.setOwner(player)
		s.log.WithFields(fields).WithField("amount", s.Price).Info("bought")
		return nil
	case s.owner == player:
		return nil
	}
	rent := s.Rent()
	if err := s.banker.Transfer(player, s.owner, rent); err != nil {
		return fmt.Errorf("rent on %s: %w", s.Name, err)
	}
	s.log.WithFields(fields).WithFields(logrus.Fields{"owner": s.owner, "amount": rent}).Info("paid rent")
	return nil
}

// Sell hands the space to player. A current holder is credited the price by the bank.
func (s *Ownable) Sell(player Player) error {
	if s.owned {
		if s.owner == player {
			return fmt.Errorf("sell %s to its owner %s: %w", s.Name, player, ErrInvalidOperation)
		}
		if err := s.banker.Pay(s.owner, s.Price); err != nil {
			return fmt.Errorf("sell %s: %w", s.Name, err)
		}
	}
	s.setOwner(player)
	return nil
}

// Mortgage flags the space. Cash is settled by the PropertyManager.
func (s *Ownable) Mortgage() error {
	if !s.owned {
		return fmt.Errorf("mortgage unowned %s: %w", s.Name, ErrInvalidOperation)
	}
	if s.mortgaged {
		return fmt.Errorf("%s already mortgaged: %w", s.Name, ErrInvalidOperation)
	}
	s.mortgaged = true
	return nil
}

func (s *Ownable) Unmortgage() error {
	if !s.mortgaged {
		return fmt.Errorf("%s not mortgaged: %w", s.Name, ErrInvalidOperation)
	}
	s.mortgaged = false
	return nil
}

func (s *Ownable) setOwner(player Player) {
	s.owner = player
	s.owned = true
	if s.group != nil {
		s.group.ownershipChanged()
	}
}
