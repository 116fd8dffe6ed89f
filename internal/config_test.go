package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("DISCORD_TOKEN", "secret")
	t.Setenv("BADGER_FILEPATH", "/tmp/autochannel")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.Equal("?", config.CommandPrefix)
	req.Equal(4, config.NumberOfWorkers)
	req.Equal(10*time.Second, config.PlatformTimeout)
	req.Equal(time.Duration(0), config.JoinCooldown)
	req.NoError(config.Validate())
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{CommandPrefix: "?", NumberOfWorkers: 1, BufferSize: 1, PersistRetries: 1, BacklogWarnPercent: 80}
	require.NoError(t, valid.Validate())

	cases := map[string]func(c *Config){
		"empty prefix":      func(c *Config) { c.CommandPrefix = "" },
		"no worker":         func(c *Config) { c.NumberOfWorkers = 0 },
		"no buffer":         func(c *Config) { c.BufferSize = 0 },
		"no retry":          func(c *Config) { c.PersistRetries = 0 },
		"negative cooldown": func(c *Config) { c.JoinCooldown = -time.Second },
		"backlog percent":   func(c *Config) { c.BacklogWarnPercent = 150 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}
