package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "classic", cfg.GameName)
	assert.Equal(t, []string{"Horse", "Hat", "Car"}, cfg.Players)
	assert.Equal(t, 100, cfg.Rounds)
	assert.Equal(t, 1500, cfg.StartingBalance)
	assert.Empty(t, cfg.RedisURL)
}

func TestParse_FromEnv(t *testing.T) {
	t.Setenv("PLAYERS", "Dog, Ship")
	t.Setenv("ROUNDS", "7")
	t.Setenv("DICE_SEED", "42")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, []string{"Dog", "Ship"}, cfg.Players)
	assert.Equal(t, 7, cfg.Rounds)
	assert.Equal(t, int64(42), cfg.DiceSeed)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]map[string]string{
		"one player":       {"PLAYERS": "Dog"},
		"duplicate player": {"PLAYERS": "Dog,Dog"},
		"zero rounds":      {"ROUNDS": "0"},
		"negative balance": {"STARTING_BALANCE": "-5"},
		"bad number":       {"ROUNDS": "many"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}
