package internal

import (
	"fmt"
	"time"
)

type Config struct {
	DiscordToken    string        `env:"DISCORD_TOKEN,required=true"`
	CommandPrefix   string        `env:"COMMAND_PREFIX,default=?"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	NumberOfWorkers int           `env:"NUMBER_OF_WORKERS,default=4"`
	BufferSize      int           `env:"BUFFER_SIZE,default=256"`
	PlatformTimeout time.Duration `env:"PLATFORM_TIMEOUT,default=10s"`
	PersistRetries  int           `env:"PERSIST_RETRIES,default=3"`
	JoinCooldown    time.Duration `env:"JOIN_COOLDOWN,default=0s"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=2s"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=1m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=30s"`
	HealthPort      int           `env:"HEALTH_PORT,default=50051"`
	DebugPort       int           `env:"DEBUG_PORT,default=8081"`
	// Backlog warning threshold, in percent of BUFFER_SIZE.
	BacklogWarnPercent int `env:"BACKLOG_WARN_PERCENT,default=80"`
}

// Validate checks the values go-env cannot express with tags.
func (c Config) Validate() error {
	switch {
	case c.CommandPrefix == "":
		return fmt.Errorf("COMMAND_PREFIX must not be empty")
	case c.NumberOfWorkers < 1:
		return fmt.Errorf("NUMBER_OF_WORKERS must be positive, got %d", c.NumberOfWorkers)
	case c.BufferSize < 1:
		return fmt.Errorf("BUFFER_SIZE must be positive, got %d", c.BufferSize)
	case c.PersistRetries < 1:
		return fmt.Errorf("PERSIST_RETRIES must be positive, got %d", c.PersistRetries)
	case c.JoinCooldown < 0:
		return fmt.Errorf("JOIN_COOLDOWN must not be negative, got %s", c.JoinCooldown)
	case c.BacklogWarnPercent < 1 || c.BacklogWarnPercent > 100:
		return fmt.Errorf("BACKLOG_WARN_PERCENT must be within 1..100, got %d", c.BacklogWarnPercent)
	}
	return nil
}
