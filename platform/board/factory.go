package board

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/DedS3t/monopoly-engine/app/game"
	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/sirupsen/logrus"
)

// Classic board constants.
const (
	Size                 = 40
	GoLocation           = 0
	JustVisitingLocation = 10
	GoSalary             = 200
)

var ErrInvalidLayout = errors.New("invalid board layout")

// Options carries the collaborators the spaces are wired to.
type Options struct {
	Players  []game.Player
	Banker   *game.Banker
	Dice     game.RollReader
	Specials map[string][]models.Special
	// Shuffle, when set, shuffles every card deck once.
	Shuffle  *rand.Rand
	GoSalary int
	Log      logrus.FieldLogger
}

// Table is a built board and the ownable spaces on it.
type Table struct {
	Board        *game.Board
	Ownables     []*game.Ownable
	Groups       map[string]*game.Group
	GoLocation   int
	JailLocation int
}

// Build turns a layout into a playable board.
func Build(layout []models.Property, opts Options) (*Table, error) {
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	if opts.GoSalary == 0 {
		opts.GoSalary = GoSalary
	}
	entries, err := ordered(layout)
	if err != nil {
		return nil, err
	}

	table := &Table{Groups: map[string]*game.Group{}, GoLocation: -1, JailLocation: -1}
	spaces := make([]game.Space, len(entries))
	decks := map[string]*game.Deck{}
	var late []func(*game.Board)

	for i, p := range entries {
		switch p.Type {
		case "go":
			if table.GoLocation >= 0 {
				return nil, fmt.Errorf("second go at %d: %w", i, ErrInvalidLayout)
			}
			table.GoLocation = i
			spaces[i] = &game.Go{Salary: opts.GoSalary, Banker: opts.Banker}
		case "jail":
			if table.JailLocation >= 0 {
				return nil, fmt.Errorf("second jail at %d: %w", i, ErrInvalidLayout)
			}
			table.JailLocation = i
			spaces[i] = game.Idle{Name: p.Name}
		case "parking":
			spaces[i] = game.Idle{Name: p.Name}
		case "tax":
			spaces[i] = &game.Tax{Name: p.Name, Amount: p.Price, Banker: opts.Banker}
		case "gotojail":
			s := &game.GoToJail{}
			late = append(late, func(b *game.Board) { s.Board = b })
			spaces[i] = s
		case "chest", "chance":
			deck, ok := decks[p.Type]
			if !ok {
				deck = newDeck(opts.Specials[p.Type], opts.Shuffle)
				decks[p.Type] = deck
			}
			s := &game.CardSpace{Name: p.Name, Deck: deck, Banker: opts.Banker, Log: opts.Log}
			late = append(late, func(b *game.Board) { s.Board = b })
			spaces[i] = s
		case "property", "railroad", "utility":
			s, err := ownable(p, opts)
			if err != nil {
				return nil, err
			}
			table.group(p).Add(s)
			table.Ownables = append(table.Ownables, s)
			spaces[i] = s
		default:
			return nil, fmt.Errorf("%q has unknown type %q: %w", p.Name, p.Type, ErrInvalidLayout)
		}
	}
	if table.GoLocation < 0 || table.JailLocation < 0 {
		return nil, fmt.Errorf("layout needs a go and a jail: %w", ErrInvalidLayout)
	}
	if err := checkCards(spaces, opts.Specials, decks); err != nil {
		return nil, err
	}

	for _, s := range table.Ownables {
		if s.Kind() == game.KindProperty {
			g := s.Group()
			g.WithMonopolyRule(game.MonopolyRent(len(g.Members())))
		}
	}

	b, err := game.NewBoard(spaces, opts.Players, table.GoLocation, table.JailLocation, opts.Log)
	if err != nil {
		return nil, err
	}
	for _, wire := range late {
		wire(b)
	}
	table.Board = b
	return table, nil
}

func ownable(p models.Property, opts Options) (*game.Ownable, error) {
	if p.Price <= 0 {
		return nil, fmt.Errorf("%q needs a positive price: %w", p.Name, ErrInvalidLayout)
	}
	if p.Rent < 0 {
		return nil, fmt.Errorf("%q has negative rent: %w", p.Name, ErrInvalidLayout)
	}
	cfg := game.OwnableConfig{Name: p.Name, Position: p.Position, Price: p.Price, BaseRent: p.Rent}
	switch p.Type {
	case "railroad":
		return game.NewRailroad(cfg, opts.Banker, opts.Log), nil
	case "utility":
		return game.NewUtility(cfg, opts.Banker, opts.Dice, opts.Log), nil
	}
	return game.NewProperty(cfg, opts.Banker, opts.Log), nil
}

func (t *Table) group(p models.Property) *game.Group {
	name := p.Group
	if name == "" {
		name = p.Type
	}
	g, ok := t.Groups[name]
	if !ok {
		g = game.NewGroup(name)
		t.Groups[name] = g
	}
	return g
}

// ordered lays the entries out by position. Every position 0..n-1 must be present, which with
// n entries also rules out duplicates.
func ordered(layout []models.Property) ([]models.Property, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("empty layout: %w", ErrInvalidLayout)
	}
	entries := make([]models.Property, len(layout))
	for i := range entries {
		p, err := GetByPos(i, layout)
		if err != nil {
			return nil, fmt.Errorf("position %d missing or duplicated: %w", i, ErrInvalidLayout)
		}
		entries[i] = p
	}
	return entries, nil
}

// checkCards rejects goto cards leaving the board or landing on another card space, which
// would draw again without end.
func checkCards(spaces []game.Space, specials map[string][]models.Special, used map[string]*game.Deck) error {
	for kind := range used {
		for _, c := range specials[kind] {
			if game.CardAction(c.Action) != game.CardGoto {
				continue
			}
			if c.Payload < 0 || c.Payload >= len(spaces) {
				return fmt.Errorf("%s card %q goes to %d, off the board: %w", kind, c.Info, c.Payload, ErrInvalidLayout)
			}
			if _, ok := spaces[c.Payload].(*game.CardSpace); ok {
				return fmt.Errorf("%s card %q goes to card space %d: %w", kind, c.Info, c.Payload, ErrInvalidLayout)
			}
		}
	}
	return nil
}

func newDeck(specials []models.Special, rng *rand.Rand) *game.Deck {
	cards := make([]game.Card, 0, len(specials))
	for _, s := range specials {
		cards = append(cards, game.Card{Info: s.Info, Action: game.CardAction(s.Action), Payload: s.Payload})
	}
	deck := game.NewDeck(cards)
	if rng != nil {
		deck.Shuffle(rng)
	}
	return deck
}
