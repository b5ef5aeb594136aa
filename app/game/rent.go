package game

// RentContext is everything a rule may look at when pricing a landing.
type RentContext struct {
	Space *Ownable
	// Roll is the total of the roll that brought the player here.
	Roll int
}

// RentRule prices rent for an owned space. Implementations hold configuration only.
type RentRule interface {
	Rent(ctx RentContext) int
}

// FlatRentRule charges the space's base rent.
type FlatRentRule struct{}

func (FlatRentRule) Rent(ctx RentContext) int {
	return ctx.Space.BaseRent
}

// GroupMultiplierRentRule scales base rent by how many group members the owner holds.
// Multipliers[i] applies when the owner holds i+1 members; counts past the end use the last entry.
type GroupMultiplierRentRule struct {
	Multipliers []int
}

// MonopolyRent doubles base rent only once the owner holds all size members.
func MonopolyRent(size int) GroupMultiplierRentRule {
	if size < 1 {
		size = 1
	}
	m := make([]int, size)
	for i := range m {
		m[i] = 1
	}
	m[size-1] = 2
	return GroupMultiplierRentRule{Multipliers: m}
}

func (r GroupMultiplierRentRule) Rent(ctx RentContext) int {
	return ctx.Space.BaseRent * pick(r.Multipliers, ownedInGroup(ctx.Space))
}

// DiceMultiplierRentRule charges a multiple of the last roll: One when the owner holds a
// single member of the group, Many for two or more.
type DiceMultiplierRentRule struct {
	One  int
	Many int
}

// UtilityRent is the classic 4x / 10x rule.
var UtilityRent = DiceMultiplierRentRule{One: 4, Many: 10}

func (r DiceMultiplierRentRule) Rent(ctx RentContext) int {
	if ownedInGroup(ctx.Space) >= 2 {
		return r.Many * ctx.Roll
	}
	return r.One * ctx.Roll
}

func ownedInGroup(s *Ownable) int {
	owner, ok := s.Owner()
	if !ok {
		return 0
	}
	if s.group == nil {
		return 1
	}
	return s.group.OwnedBy(owner)
}

func pick(multipliers []int, count int) int {
	if len(multipliers) == 0 || count < 1 {
		return 1
	}
	if count > len(multipliers) {
		count = len(multipliers)
	}
	return multipliers[count-1]
}
