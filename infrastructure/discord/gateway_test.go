package discord

import (
	"autochannel/domain/event"
	"autochannel/errors"
	"autochannel/services"
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func TestVoiceStateEvent(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	members := map[string]int{"T": 1, "C1": 0}
	count := func(id string) int { return members[id] }

	t.Run("should translate a move", func(t *testing.T) {
		req := require.New(t)
		vs := &discordgo.VoiceStateUpdate{
			VoiceState:   &discordgo.VoiceState{GuildID: "G", UserID: "alice", ChannelID: "T"},
			BeforeUpdate: &discordgo.VoiceState{GuildID: "G", UserID: "alice", ChannelID: "C1"},
		}

		evt := voiceStateEvent(vs, count, at)

		req.Equal(event.MemberVoiceStateChanged{
			GuildID:  "G",
			MemberID: "alice",
			Before:   &event.VoiceChannelRef{ID: "C1", Members: 0},
			After:    &event.VoiceChannelRef{ID: "T", Members: 1},
			At:       at,
		}, evt)
		req.True(evt.Moved())
	})

	t.Run("should translate a first connection", func(t *testing.T) {
		req := require.New(t)
		vs := &discordgo.VoiceStateUpdate{VoiceState: &discordgo.VoiceState{GuildID: "G", UserID: "bob", ChannelID: "T"}}

		evt := voiceStateEvent(vs, count, at)

		req.Nil(evt.Before)
		req.Equal("T", evt.After.ID)
	})

	t.Run("should translate a disconnection", func(t *testing.T) {
		req := require.New(t)
		vs := &discordgo.VoiceStateUpdate{
			VoiceState:   &discordgo.VoiceState{GuildID: "G", UserID: "bob"},
			BeforeUpdate: &discordgo.VoiceState{GuildID: "G", UserID: "bob", ChannelID: "C1"},
		}

		evt := voiceStateEvent(vs, count, at)

		req.Nil(evt.After)
		req.Equal(&event.VoiceChannelRef{ID: "C1", Members: 0}, evt.Before)
	})
}

func TestCountMembers(t *testing.T) {
	req := require.New(t)
	states := []*discordgo.VoiceState{
		{UserID: "a", ChannelID: "C1"},
		{UserID: "b", ChannelID: "C2"},
		nil,
		{UserID: "c", ChannelID: "C1"},
	}
	req.Equal(2, countMembers(states, "C1"))
	req.Equal(0, countMembers(states, "C3"))
}

func TestParseCommand(t *testing.T) {
	req := require.New(t)

	name, args, ok := parseCommand("?", "?Create-Autoch <#123>  Squad room ")
	req.True(ok)
	req.Equal(services.CreateCommand, name)
	req.Equal("<#123>  Squad room", args)

	name, args, ok = parseCommand("?", "?delete-autoch")
	req.True(ok)
	req.Equal(services.DeleteCommand, name)
	req.Empty(args)

	_, _, ok = parseCommand("?", "hello ?create-autoch")
	req.False(ok)
	_, _, ok = parseCommand("?", "?")
	req.False(ok)
}

func TestCloneData(t *testing.T) {
	req := require.New(t)
	overwrites := []*discordgo.PermissionOverwrite{{ID: "role", Type: discordgo.PermissionOverwriteTypeRole, Deny: discordgo.PermissionVoiceConnect}}
	tpl := &discordgo.Channel{
		ID:                   "T",
		GuildID:              "G",
		Name:                 "Lounge",
		Type:                 discordgo.ChannelTypeGuildVoice,
		Bitrate:              64000,
		UserLimit:            5,
		Position:             3,
		ParentID:             "category",
		PermissionOverwrites: overwrites,
	}

	data := cloneData(tpl, "Lounge #1")

	req.Equal("Lounge #1", data.Name)
	req.Equal(discordgo.ChannelTypeGuildVoice, data.Type)
	req.Equal(64000, data.Bitrate)
	req.Equal(5, data.UserLimit)
	req.Equal(3, data.Position)
	req.Equal("category", data.ParentID)
	req.Equal(overwrites, data.PermissionOverwrites)
}

func TestReplyEmbed(t *testing.T) {
	req := require.New(t)
	req.Equal(colorGreen, replyEmbed(services.Reply{Success: true, Text: "ok"}).Color)
	embed := replyEmbed(services.Reply{Text: "ko"})
	req.Equal(colorRed, embed.Color)
	req.Equal("ko", embed.Description)
}

func TestIsVoice(t *testing.T) {
	req := require.New(t)
	req.True(isVoice(&discordgo.Channel{Type: discordgo.ChannelTypeGuildVoice}))
	req.True(isVoice(&discordgo.Channel{Type: discordgo.ChannelTypeGuildStageVoice}))
	req.False(isVoice(&discordgo.Channel{Type: discordgo.ChannelTypeGuildText}))
	req.False(isVoice(nil))
}

func TestRestError(t *testing.T) {
	req := require.New(t)

	notFound := &discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusNotFound, Status: "404 Not Found"}}
	req.ErrorIs(restError(notFound), errors.ErrNotFound)

	forbidden := &discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusForbidden, Status: "403 Forbidden"}}
	err := restError(forbidden)
	req.ErrorIs(err, errors.ErrPlatformOperation)
	req.NotErrorIs(err, errors.ErrNotFound)

	req.ErrorIs(restError(stderrors.New("dial tcp: timeout")), errors.ErrPlatformOperation)
	req.NoError(restError(nil))
}

func TestGateway_Publish_After_Close_Does_Not_Block(t *testing.T) {
	req := require.New(t)
	events := make(chan event.Event)
	g, err := NewGateway("token", events, slog.Default())
	req.NoError(err)

	req.NoError(g.Close())
	g.publish(event.GatewayReady{})
	req.NoError(g.Close())
}

type recordingHandler struct {
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}
func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func TestLogWriter_Maps_Levels(t *testing.T) {
	req := require.New(t)
	h := &recordingHandler{}
	write := logWriter(slog.New(h))

	write(discordgo.LogError, 0, "heartbeat failed: %s", "EOF")
	write(discordgo.LogWarning, 0, "reconnecting")
	write(discordgo.LogInformational, 0, "connected\n")
	write(discordgo.LogDebug, 0, "  ")

	req.Len(h.records, 3)
	req.Equal(slog.LevelError, h.records[0].Level)
	req.Equal("heartbeat failed: EOF", h.records[0].Message)
	req.Equal(slog.LevelWarn, h.records[1].Level)
	req.Equal(slog.LevelDebug, h.records[2].Level)
	req.Equal("connected", h.records[2].Message)
	req.Equal(discordgo.LogInformational, sessionLogLevel(slog.New(h)))
}
