package game

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

const (
	horse Player = "Horse"
	hat   Player = "Hat"
)

// queueDice returns its values in order and fails the test when it runs dry.
type queueDice struct {
	t      *testing.T
	values []int
}

func newQueueDice(t *testing.T, values ...int) *queueDice {
	return &queueDice{t: t, values: values}
}

func (d *queueDice) RollDie() int {
	require.NotEmpty(d.t, d.values, "dice rolled more often than expected")
	v := d.values[0]
	d.values = d.values[1:]
	return v
}

// recordingSpace remembers who landed on it.
type recordingSpace struct {
	landed []Player
}

func (s *recordingSpace) LandOn(player Player) error {
	s.landed = append(s.landed, player)
	return nil
}

func quietLogger() logrus.FieldLogger {
	log, _ := test.NewNullLogger()
	return log
}

func recordingBoard(t *testing.T, size, jail int, players ...Player) (*Board, []*recordingSpace) {
	recs := make([]*recordingSpace, size)
	spaces := make([]Space, size)
	for i := range recs {
		recs[i] = &recordingSpace{}
		spaces[i] = recs[i]
	}
	b, err := NewBoard(spaces, players, 0, jail, quietLogger())
	require.NoError(t, err)
	return b, recs
}

func property(name string, pos, price, rent int, banker *Banker) *Ownable {
	return NewProperty(OwnableConfig{Name: name, Position: pos, Price: price, BaseRent: rent}, banker, quietLogger())
}
