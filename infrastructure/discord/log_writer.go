package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// logWriter redirects the library's internal logging to the application's slog.Logger.
// discordgo only exposes a package-level hook, so the last installed logger wins.
func logWriter(logger *slog.Logger) func(msgL, caller int, format string, a ...interface{}) {
	return func(msgL, _ int, format string, a ...interface{}) {
		msg := strings.TrimSpace(fmt.Sprintf(format, a...))
		if msg == "" {
			return
		}
		switch msgL {
		case discordgo.LogError:
			logger.Error(msg, "source", "discordgo")
		case discordgo.LogWarning:
			logger.Warn(msg, "source", "discordgo")
		default:
			logger.Debug(msg, "source", "discordgo")
		}
	}
}

// sessionLogLevel keeps the websocket chatter out unless debug logging is on.
func sessionLogLevel(logger *slog.Logger) int {
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		return discordgo.LogInformational
	}
	return discordgo.LogWarning
}
