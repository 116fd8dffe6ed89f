package discord

import (
	"autochannel/contract"
	"autochannel/domain"
	"autochannel/domain/event"
	"autochannel/errors"
	"autochannel/services"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

var (
	_ contract.IPlatformGateway = (*Gateway)(nil)
	_ contract.IEventSource     = (*Gateway)(nil)
)

const (
	colorGreen = 0x2ecc71
	colorRed   = 0xe74c3c
)

// Gateway adapts a Discord bot session to the lifecycle.
// Handlers run synchronously on the websocket reader, so events are published in arrival order
// and member counts are read from a state that already reflects the event.
type Gateway struct {
	session   *discordgo.Session
	log       *slog.Logger
	events    chan event.Event
	done      chan struct{}
	closeOnce sync.Once

	prefix   string
	commands services.IAutochannelService
}

func NewGateway(token string, events chan event.Event, log *slog.Logger) (*Gateway, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrPlatformOperation, err)
	}
	discordgo.Logger = logWriter(log)
	session.LogLevel = sessionLogLevel(log)
	session.SyncEvents = true
	session.StateEnabled = true
	session.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildVoiceStates |
		discordgo.IntentGuildMessages |
		discordgo.IntentMessageContent

	return &Gateway{
		session: session,
		log:     log,
		events:  events,
		done:    make(chan struct{}),
	}, nil
}

// HandleCommands enables the text commands. It must be called before Open.
func (g *Gateway) HandleCommands(prefix string, svc services.IAutochannelService) {
	g.prefix = prefix
	g.commands = svc
}

func (g *Gateway) Open() error {
	g.session.AddHandler(g.onReady)
	g.session.AddHandler(g.onVoiceStateUpdate)
	g.session.AddHandler(g.onChannelDelete)
	if g.commands != nil {
		g.session.AddHandler(g.onMessageCreate)
	}
	if err := g.session.Open(); err != nil {
		return fmt.Errorf("%w: open session: %w", errors.ErrPlatformOperation, err)
	}
	g.log.Info("Discord session opened")
	return nil
}

// Close stops publishing events and closes the websocket. REST calls keep working,
// so temp channels can still be deleted afterwards.
func (g *Gateway) Close() error {
	var err error
	g.closeOnce.Do(func() {
		close(g.done)
		err = g.session.Close()
	})
	return err
}

func (g *Gateway) Events() <-chan event.Event {
	return g.events
}

func (g *Gateway) CloneChannel(ctx context.Context, templateID, name string) (string, error) {
	tpl, err := g.channel(ctx, templateID)
	if err != nil {
		return "", err
	}
	ch, err := g.session.GuildChannelCreateComplex(tpl.GuildID, cloneData(tpl, name), discordgo.WithContext(ctx))
	if err != nil {
		return "", restError(err)
	}
	return ch.ID, nil
}

func (g *Gateway) MoveMember(ctx context.Context, guildID, memberID, channelID string) error {
	return restError(g.session.GuildMemberMove(guildID, memberID, &channelID, discordgo.WithContext(ctx)))
}

func (g *Gateway) DeleteChannel(ctx context.Context, channelID string) error {
	_, err := g.session.ChannelDelete(channelID, discordgo.WithContext(ctx))
	return restError(err)
}

func (g *Gateway) LookupChannel(ctx context.Context, channelID string) (domain.ChannelInfo, error) {
	ch, err := g.channel(ctx, channelID)
	if err != nil {
		return domain.ChannelInfo{}, err
	}
	return domain.ChannelInfo{
		ID:      ch.ID,
		GuildID: ch.GuildID,
		Name:    ch.Name,
		Voice:   isVoice(ch),
	}, nil
}

// channel reads the state cache first and falls back to the REST API.
func (g *Gateway) channel(ctx context.Context, channelID string) (*discordgo.Channel, error) {
	if ch, err := g.session.State.Channel(channelID); err == nil {
		return ch, nil
	}
	ch, err := g.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, restError(err)
	}
	return ch, nil
}

func (g *Gateway) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	g.log.Info("Discord gateway ready", "session_id", r.SessionID, "guilds", len(r.Guilds))
	g.publish(event.GatewayReady{Guilds: len(r.Guilds), At: time.Now()})
}

func (g *Gateway) onVoiceStateUpdate(_ *discordgo.Session, vs *discordgo.VoiceStateUpdate) {
	g.publish(voiceStateEvent(vs, func(channelID string) int {
		return g.members(vs.GuildID, channelID)
	}, time.Now()))
}

func (g *Gateway) onChannelDelete(_ *discordgo.Session, c *discordgo.ChannelDelete) {
	if !isVoice(c.Channel) {
		return
	}
	g.publish(event.ChannelDeleted{ChannelID: c.ID, GuildID: c.GuildID, At: time.Now()})
}

// onMessageCreate answers commands from guild administrators. Commands run off the
// websocket reader so a slow platform call never stalls event delivery.
func (g *Gateway) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	name, args, ok := parseCommand(g.prefix, m.Content)
	if !ok {
		return
	}
	perms, err := s.State.MessagePermissions(m.Message)
	if err != nil || perms&discordgo.PermissionAdministrator == 0 {
		g.log.Debug("Command ignored, not an administrator", "user_id", m.Author.ID, "command", name)
		return
	}

	go func() {
		ctx := context.Background()
		var reply services.Reply
		switch name {
		case services.CreateCommand:
			reply = g.commands.CreateAutochannel(ctx, args)
		case services.DeleteCommand:
			reply = g.commands.DeleteAutochannel(ctx, args)
		case services.FallbackCommand:
			reply = g.commands.SetFallbackChannel(ctx, args)
		default:
			return
		}
		if _, err := g.session.ChannelMessageSendEmbed(m.ChannelID, replyEmbed(reply)); err != nil {
			g.log.Warn("Unable to send command reply", "channel_id", m.ChannelID, "err", err)
		}
	}()
}

func (g *Gateway) publish(e event.Event) {
	select {
	case <-g.done:
		g.log.Debug("Gateway closed, event dropped", "type", e.Type())
	case g.events <- e:
	}
}

func (g *Gateway) members(guildID, channelID string) int {
	guild, err := g.session.State.Guild(guildID)
	if err != nil {
		return 0
	}
	g.session.State.RLock()
	defer g.session.State.RUnlock()
	return countMembers(guild.VoiceStates, channelID)
}

func voiceStateEvent(vs *discordgo.VoiceStateUpdate, members func(channelID string) int, at time.Time) event.MemberVoiceStateChanged {
	evt := event.MemberVoiceStateChanged{
		GuildID:  vs.GuildID,
		MemberID: vs.UserID,
		At:       at,
	}
	if vs.BeforeUpdate != nil && vs.BeforeUpdate.ChannelID != "" {
		evt.Before = &event.VoiceChannelRef{ID: vs.BeforeUpdate.ChannelID, Members: members(vs.BeforeUpdate.ChannelID)}
	}
	if vs.ChannelID != "" {
		evt.After = &event.VoiceChannelRef{ID: vs.ChannelID, Members: members(vs.ChannelID)}
	}
	return evt
}

func countMembers(states []*discordgo.VoiceState, channelID string) int {
	return lo.CountBy(states, func(vs *discordgo.VoiceState) bool {
		return vs != nil && vs.ChannelID == channelID
	})
}

func cloneData(tpl *discordgo.Channel, name string) discordgo.GuildChannelCreateData {
	return discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 tpl.Type,
		Bitrate:              tpl.Bitrate,
		UserLimit:            tpl.UserLimit,
		Position:             tpl.Position,
		ParentID:             tpl.ParentID,
		PermissionOverwrites: tpl.PermissionOverwrites,
		NSFW:                 tpl.NSFW,
	}
}

// parseCommand splits "<prefix><name> <args>". The command name is case-insensitive.
func parseCommand(prefix, content string) (name, args string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", "", false
	}
	name, args, _ = strings.Cut(strings.TrimPrefix(content, prefix), " ")
	name = strings.ToLower(strings.TrimSpace(name))
	return name, strings.TrimSpace(args), name != ""
}

func replyEmbed(reply services.Reply) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color:       lo.Ternary(reply.Success, colorGreen, colorRed),
		Description: reply.Text,
	}
}

func isVoice(ch *discordgo.Channel) bool {
	return ch != nil && (ch.Type == discordgo.ChannelTypeGuildVoice || ch.Type == discordgo.ChannelTypeGuildStageVoice)
}

// restError maps a Discord 404 to ErrNotFound and everything else to ErrPlatformOperation.
func restError(err error) error {
	if err == nil {
		return nil
	}
	var restErr *discordgo.RESTError
	if stderrors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", errors.ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", errors.ErrPlatformOperation, err)
}
