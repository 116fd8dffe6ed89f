// Package domain contains core concepts of the autochannel system.
// This file defines template and temporary voice channels.
// No runtime, network, or platform logic should be added here.
package domain

import "fmt"

// TemplateChannel is a configured voice channel spawning temporary children.
// NextSequence is a high-water mark, not a count of live children.
type TemplateChannel struct {
	ID           string
	DisplayName  string
	NextSequence int
	Children     []string
}

// TempChannel is a channel cloned from a template.
type TempChannel struct {
	ID         string
	TemplateID string
	Sequence   int
}

// ChannelInfo is what the platform tells us about a channel.
type ChannelInfo struct {
	ID      string
	GuildID string
	Name    string
	Voice   bool
}

// TempChannelName derives the display name of a temporary channel.
func TempChannelName(displayName string, sequence int) string {
	return fmt.Sprintf("%s #%d", displayName, sequence)
}
