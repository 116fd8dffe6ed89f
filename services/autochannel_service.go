package services

import (
	"autochannel/contract"
	"autochannel/domain"
	"autochannel/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Message keys, resolved through the config store so operators can reword replies.
const (
	MsgCreateSuccess         = "create_success"
	MsgCreateAlreadyPresent  = "create_already_present"
	MsgDeleteSuccess         = "delete_success"
	MsgDeleteNotPresent      = "delete_not_present"
	MsgFallbackSuccess       = "fallback_success"
	MsgIncorrectCommandUsage = "incorrect_command_usage"
	MsgBadCommandArguments   = "bad_command_arguments"
	MsgNotVoiceChannel       = "not_voice_channel"
	MsgCreateTempChannel     = "create_temp_channel"
	MsgInternalError         = "internal_error"
)

// DefaultMessages are seeded into the store at startup. A literal "\n" in a stored
// template renders as a line break.
var DefaultMessages = map[string]string{
	MsgCreateSuccess:         "Autochannel created.\\nJoin <#%s> to get a channel named **%s #1**.",
	MsgCreateAlreadyPresent:  "This channel is already an autochannel.",
	MsgDeleteSuccess:         "Autochannel <#%s> removed.",
	MsgDeleteNotPresent:      "<#%s> is not an autochannel.",
	MsgFallbackSuccess:       "Members joining too fast will be moved to <#%s>.",
	MsgIncorrectCommandUsage: "Incorrect command usage.\\nUsage: `%s`",
	MsgBadCommandArguments:   "Bad command arguments: channel not found.",
	MsgNotVoiceChannel:       "<#%s> is not a voice channel.",
	MsgCreateTempChannel:     "<#%s> is a temporary channel and cannot become an autochannel.",
	MsgInternalError:         "Something went wrong, please try again later.",
}

const (
	CreateCommand   = "create-autoch"
	DeleteCommand   = "delete-autoch"
	FallbackCommand = "fallback-autoch"
)

// Reply is what the bot answers to a command. Success selects the embed color.
type Reply struct {
	Success bool
	Text    string
}

type IAutochannelService interface {
	CreateAutochannel(ctx context.Context, args string) Reply
	DeleteAutochannel(ctx context.Context, args string) Reply
	SetFallbackChannel(ctx context.Context, args string) Reply
}

type AutochannelService struct {
	log       *slog.Logger
	lifecycle contract.ILifecycle
	store     contract.IConfigStore
	validate  *validator.Validate
	prefix    string
}

func NewAutochannelService(log *slog.Logger, lifecycle contract.ILifecycle, store contract.IConfigStore, prefix string) *AutochannelService {
	return &AutochannelService{
		log:       log,
		lifecycle: lifecycle,
		store:     store,
		validate:  validator.New(),
		prefix:    prefix,
	}
}

// CreateAutochannel handles "create-autoch <auto_channel> <temp_channels_name>".
// The name is optional and defaults to the template channel name.
func (s *AutochannelService) CreateAutochannel(ctx context.Context, args string) Reply {
	channelID, name, ok := splitArgs(args)
	if !ok {
		return s.usage(CreateCommand, "<auto_channel> <temp_channels_name>")
	}

	cmd := domain.CreateTemplateCommand{ChannelID: channelID, DisplayName: name}
	if err := s.validate.Struct(cmd); err != nil {
		s.log.Debug("Invalid create command", "err", err)
		return s.failure(MsgBadCommandArguments)
	}

	tc, err := s.lifecycle.CreateTemplate(ctx, cmd)
	switch {
	case err == nil:
		return s.success(MsgCreateSuccess, tc.ID, tc.DisplayName)
	case stderrors.Is(err, errors.ErrAlreadyRegistered):
		return s.failure(MsgCreateAlreadyPresent)
	case stderrors.Is(err, errors.ErrNotFound):
		return s.failure(MsgBadCommandArguments)
	case stderrors.Is(err, errors.ErrNotVoiceChannel):
		return s.failure(MsgNotVoiceChannel, channelID)
	case stderrors.Is(err, errors.ErrTemporaryChannel):
		return s.failure(MsgCreateTempChannel, channelID)
	default:
		s.log.Error("Unable to create autochannel", "channel_id", channelID, "err", err)
		return s.failure(MsgInternalError)
	}
}

// DeleteAutochannel handles "delete-autoch <auto_channel>" and cascades to every temp channel.
func (s *AutochannelService) DeleteAutochannel(ctx context.Context, args string) Reply {
	channelID, rest, ok := splitArgs(args)
	if !ok || rest != "" {
		return s.usage(DeleteCommand, "<auto_channel>")
	}

	err := s.lifecycle.DeleteTemplate(ctx, channelID)
	switch {
	case err == nil:
		return s.success(MsgDeleteSuccess, channelID)
	case stderrors.Is(err, errors.ErrNotFound):
		return s.failure(MsgDeleteNotPresent, channelID)
	default:
		s.log.Error("Unable to delete autochannel", "channel_id", channelID, "err", err)
		return s.failure(MsgInternalError)
	}
}

// SetFallbackChannel handles "fallback-autoch <channel>".
func (s *AutochannelService) SetFallbackChannel(_ context.Context, args string) Reply {
	channelID, rest, ok := splitArgs(args)
	if !ok || rest != "" {
		return s.usage(FallbackCommand, "<channel>")
	}
	if err := s.validate.Var(channelID, "required,numeric"); err != nil {
		return s.failure(MsgBadCommandArguments)
	}
	if err := s.store.SetFallbackChannelID(channelID); err != nil {
		s.log.Error("Unable to save fallback channel", "channel_id", channelID, "err", err)
		return s.failure(MsgInternalError)
	}
	return s.success(MsgFallbackSuccess, channelID)
}

func (s *AutochannelService) usage(command, params string) Reply {
	return s.failure(MsgIncorrectCommandUsage, fmt.Sprintf("%s%s %s", s.prefix, command, params))
}

func (s *AutochannelService) success(key string, args ...any) Reply {
	return Reply{Success: true, Text: s.render(key, args...)}
}

func (s *AutochannelService) failure(key string, args ...any) Reply {
	return Reply{Success: false, Text: s.render(key, args...)}
}

// render resolves a message template from the store, falling back to the defaults.
func (s *AutochannelService) render(key string, args ...any) string {
	msg, err := s.store.Message(key)
	if err != nil {
		s.log.Warn("Message not found in store, using default", "key", key, "err", err)
		msg = lo.ValueOr(DefaultMessages, key, key)
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return strings.ReplaceAll(msg, `\n`, "\n")
}

// splitArgs extracts the leading channel reference and the remaining text.
// A channel can be given as a raw id or as a <#id> mention.
func splitArgs(args string) (channelID, rest string, ok bool) {
	args = strings.TrimSpace(args)
	if args == "" {
		return "", "", false
	}
	first, rest, _ := strings.Cut(args, " ")
	return ParseChannelRef(first), strings.TrimSpace(rest), true
}

func ParseChannelRef(ref string) string {
	if strings.HasPrefix(ref, "<#") && strings.HasSuffix(ref, ">") {
		return ref[2 : len(ref)-1]
	}
	return ref
}
