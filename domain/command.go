package domain

// CreateTemplateCommand turns an existing voice channel into a template.
// An empty DisplayName falls back to the channel name.
type CreateTemplateCommand struct {
	ChannelID   string `validate:"required,numeric"`
	DisplayName string `validate:"max=90"`
}
