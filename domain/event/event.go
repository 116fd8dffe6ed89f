// Package event defines the closed set of gateway events the lifecycle reacts to.
package event

import "time"

type Type string

const (
	MemberVoiceStateChangedType Type = "MEMBER_VOICE_STATE_CHANGED"
	ChannelDeletedType          Type = "CHANNEL_DELETED"
	GatewayReadyType            Type = "GATEWAY_READY"
)

// Event is implemented by MemberVoiceStateChanged, ChannelDeleted and GatewayReady only.
type Event interface {
	Type() Type
	OccurredAt() time.Time
}

// VoiceChannelRef points at a voice channel together with the number of members
// connected to it once the state change has been applied.
type VoiceChannelRef struct {
	ID      string
	Members int
}

// MemberVoiceStateChanged is emitted when a member joins, leaves or moves between voice channels.
// Before and After are nil when the member was not (or is no longer) connected.
type MemberVoiceStateChanged struct {
	GuildID  string
	MemberID string
	Before   *VoiceChannelRef
	After    *VoiceChannelRef
	At       time.Time
}

func (m MemberVoiceStateChanged) Type() Type            { return MemberVoiceStateChangedType }
func (m MemberVoiceStateChanged) OccurredAt() time.Time { return m.At }

// Moved reports whether the member actually changed channel.
// Mute or deafen updates keep the same channel on both sides.
func (m MemberVoiceStateChanged) Moved() bool {
	if m.Before == nil || m.After == nil {
		return m.Before != m.After
	}
	return m.Before.ID != m.After.ID
}

type ChannelDeleted struct {
	ChannelID string
	GuildID   string
	At        time.Time
}

func (c ChannelDeleted) Type() Type            { return ChannelDeletedType }
func (c ChannelDeleted) OccurredAt() time.Time { return c.At }

type GatewayReady struct {
	Guilds int
	At     time.Time
}

func (g GatewayReady) Type() Type            { return GatewayReadyType }
func (g GatewayReady) OccurredAt() time.Time { return g.At }
