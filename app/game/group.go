package game

// Group is the ordered set of spaces sharing a rent relationship. Members are referenced,
// not owned: the board keeps the spaces alive.
type Group struct {
	Name     string
	members  []*Ownable
	monopoly RentRule
}

func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// WithMonopolyRule makes the group swap every member to rule once a single player owns them all.
func (g *Group) WithMonopolyRule(rule RentRule) *Group {
	g.monopoly = rule
	return g
}

// Add links the space to the group. Members keep the order they were added in.
func (g *Group) Add(spaces ...*Ownable) {
	for _, s := range spaces {
		s.group = g
		g.members = append(g.members, s)
	}
}

func (g *Group) Members() []*Ownable {
	out := make([]*Ownable, len(g.members))
	copy(out, g.members)
	return out
}

// OwnedBy counts the members held by player.
func (g *Group) OwnedBy(player Player) int {
	n := 0
	for _, s := range g.members {
		if owner, ok := s.Owner(); ok && owner == player {
			n++
		}
	}
	return n
}

// Monopolist reports the player holding every member, if any.
func (g *Group) Monopolist() (Player, bool) {
	if len(g.members) == 0 {
		return "", false
	}
	owner, ok := g.members[0].Owner()
	if !ok || g.OwnedBy(owner) != len(g.members) {
		return "", false
	}
	return owner, true
}

// ownershipChanged re-selects each member's rent rule after a purchase or sale.
func (g *Group) ownershipChanged() {
	if g.monopoly == nil {
		return
	}
	_, complete := g.Monopolist()
	for _, s := range g.members {
		if complete {
			s.ChangeRentRule(g.monopoly)
		} else {
			s.ChangeRentRule(s.baseRule)
		}
	}
}
