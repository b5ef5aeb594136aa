package game

import "math/rand"

// Dice is the randomness source for a single die.
type Dice interface {
	RollDie() int
}

// RollReader exposes the total of the most recent roll.
type RollReader interface {
	LastRoll() int
}

type RandomDice struct {
	rng *rand.Rand
}

func NewRandomDice(rng *rand.Rand) *RandomDice {
	return &RandomDice{rng: rng}
}

func (d *RandomDice) RollDie() int {
	return d.rng.Intn(6) + 1
}

// Roll is the outcome of throwing both dice once.
type Roll struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

func (r Roll) Total() int { return r.First + r.Second }

func (r Roll) IsDoubles() bool { return r.First == r.Second }

// Cup throws two dice and remembers the last total for dice-driven rent.
type Cup struct {
	dice Dice
	last int
}

func NewCup(dice Dice) *Cup {
	return &Cup{dice: dice}
}

func (c *Cup) Roll() Roll {
	r := Roll{First: c.dice.RollDie(), Second: c.dice.RollDie()}
	c.last = r.Total()
	return r
}

func (c *Cup) LastRoll() int { return c.last }
