package runtime

import (
	"autochannel/contract"
	"autochannel/domain"
	"autochannel/domain/event"
	apperrors "autochannel/errors"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Ensure *Lifecycle implements the contract.ILifecycle interface at compile time.
var _ contract.ILifecycle = (*Lifecycle)(nil)

const persistBackoff = 100 * time.Millisecond

// Lifecycle reacts to gateway events and is the only writer of the Registry and the Tracker.
// Platform calls are never made while a template lock is held.
type Lifecycle struct {
	log             *slog.Logger
	registry        *Registry
	tracker         *Tracker
	gateway         contract.IPlatformGateway
	store           contract.IConfigStore
	readiness       contract.IReadiness
	platformTimeout time.Duration
	persistRetries  int
	joinCooldown    time.Duration

	cooldownMu sync.Mutex
	lastJoin   map[string]time.Time
	now        func() time.Time
}

func NewLifecycle(log *slog.Logger,
	registry *Registry, tracker *Tracker,
	gateway contract.IPlatformGateway, store contract.IConfigStore, readiness contract.IReadiness,
	platformTimeout time.Duration, persistRetries int, joinCooldown time.Duration) *Lifecycle {
	return &Lifecycle{
		log:             log,
		registry:        registry,
		tracker:         tracker,
		gateway:         gateway,
		store:           store,
		readiness:       readiness,
		platformTimeout: platformTimeout,
		persistRetries:  max(persistRetries, 1),
		joinCooldown:    joinCooldown,
		lastJoin:        make(map[string]time.Time),
		now:             time.Now,
	}
}

// Handle dispatches a gateway event.
func (l *Lifecycle) Handle(ctx context.Context, e event.Event) error {
	switch evt := e.(type) {
	case event.GatewayReady:
		return l.Reconcile(ctx, evt)
	case event.MemberVoiceStateChanged:
		return l.handleVoiceState(ctx, evt)
	case event.ChannelDeleted:
		return l.handleChannelDeleted(ctx, evt)
	default:
		return fmt.Errorf("unsupported event %T", e)
	}
}

// Reconcile replays the persisted templates against the live platform.
// Templates whose channel is gone are removed from the store. Temporary channels
// left over by a previous run are not rediscovered.
func (l *Lifecycle) Reconcile(ctx context.Context, ready event.GatewayReady) error {
	if fallback, err := l.store.GetFallbackChannelID(); err != nil {
		l.log.Warn("Unable to read fallback channel", "err", err)
	} else if fallback != nil {
		if _, err := l.lookup(ctx, *fallback); err != nil {
			l.log.Warn("Fallback channel unavailable", "channel_id", *fallback, "err", err)
		}
	}

	templates, err := l.store.ListTemplates()
	if err != nil {
		return fmt.Errorf("%w: list templates: %w", apperrors.ErrConfigPersistence, err)
	}

	loaded := 0
	for _, tc := range templates {
		_, err := l.lookup(ctx, tc.ID)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			l.log.Info("Channel not found, deleting", "template_id", tc.ID)
			if err := l.forgetTemplate(ctx, tc.ID); err != nil {
				l.log.Error("Failed to delete stale template", "template_id", tc.ID, "err", err)
			}
			continue
		case err != nil:
			l.log.Warn("Template lookup failed, keeping it", "template_id", tc.ID, "err", err)
		}

		if err := l.registry.Register(tc.ID, tc.DisplayName); err != nil {
			if errors.Is(err, apperrors.ErrAlreadyRegistered) {
				l.log.Debug("Template already loaded", "template_id", tc.ID)
				loaded++
				continue
			}
			return err
		}
		loaded++
	}

	l.log.Info("Autochannels loaded", "templates", loaded, "guilds", ready.Guilds)
	if l.readiness != nil {
		l.readiness.SetServing(true)
	}
	return nil
}

// forgetTemplate drops a template whose channel no longer exists, cascading when it is loaded.
func (l *Lifecycle) forgetTemplate(ctx context.Context, templateID string) error {
	if l.registry.Contains(templateID) {
		err := l.DeleteTemplate(ctx, templateID)
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
	}
	return l.persist(ctx, func() error { return l.store.DeleteTemplate(templateID) })
}

// CreateTemplate registers a voice channel as a template and persists it.
// On persistence failure the registration is undone so the registry and the store agree.
func (l *Lifecycle) CreateTemplate(ctx context.Context, cmd domain.CreateTemplateCommand) (domain.TemplateChannel, error) {
	if l.registry.Contains(cmd.ChannelID) {
		return domain.TemplateChannel{}, fmt.Errorf("%w: %s", apperrors.ErrAlreadyRegistered, cmd.ChannelID)
	}
	if l.tracker.Contains(cmd.ChannelID) {
		return domain.TemplateChannel{}, fmt.Errorf("%w: %s", apperrors.ErrTemporaryChannel, cmd.ChannelID)
	}

	info, err := l.lookup(ctx, cmd.ChannelID)
	if err != nil {
		return domain.TemplateChannel{}, err
	}
	if !info.Voice {
		return domain.TemplateChannel{}, fmt.Errorf("%w: %s", apperrors.ErrNotVoiceChannel, cmd.ChannelID)
	}

	name := strings.TrimSpace(cmd.DisplayName)
	if name == "" {
		name = info.Name
	}

	if err := l.registry.Register(cmd.ChannelID, name); err != nil {
		return domain.TemplateChannel{}, err
	}
	if err := l.persist(ctx, func() error { return l.store.PutTemplate(cmd.ChannelID, name) }); err != nil {
		if _, uerr := l.registry.Unregister(cmd.ChannelID); uerr != nil {
			l.log.Error("Failed to undo template registration", "template_id", cmd.ChannelID, "err", uerr)
		}
		return domain.TemplateChannel{}, err
	}

	l.log.Info("Autochannel created", "template_id", cmd.ChannelID, "name", name)
	return l.registry.Snapshot(cmd.ChannelID)
}

// DeleteTemplate cascades: every live child is deleted, then the template is unregistered
// and removed from the store. Child deletions are best-effort.
func (l *Lifecycle) DeleteTemplate(ctx context.Context, templateID string) error {
	children, err := l.registry.Unregister(templateID)
	if err != nil {
		return err
	}

	for _, childID := range children {
		l.tracker.Remove(childID)
		if err := l.deleteChannel(ctx, childID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			l.log.Warn("Failed to delete temp channel during cascade", "template_id", templateID, "channel_id", childID, "err", err)
		}
	}

	if err := l.persist(ctx, func() error { return l.store.DeleteTemplate(templateID) }); err != nil {
		return err
	}
	l.log.Info("Autochannel deleted", "template_id", templateID, "children", len(children))
	return nil
}

// Shutdown deletes every tracked temporary channel so none outlives the process.
// Failures are logged and skipped. It returns the number of delete requests issued.
func (l *Lifecycle) Shutdown(ctx context.Context) int {
	if l.readiness != nil {
		l.readiness.SetServing(false)
	}

	issued := 0
	for _, tc := range l.tracker.All() {
		if _, ok := l.tracker.Remove(tc.ID); !ok {
			continue
		}
		if _, err := l.registry.RemoveChild(tc.TemplateID, tc.ID); err != nil {
			l.log.Debug("Temp channel already detached", "channel_id", tc.ID, "err", err)
		}
		issued++
		if err := l.deleteChannel(ctx, tc.ID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			l.log.Warn("Failed to delete temp channel on shutdown", "channel_id", tc.ID, "err", err)
		}
	}
	l.log.Info("Temp channels cleaned up", "count", issued)
	return issued
}

func (l *Lifecycle) handleVoiceState(ctx context.Context, evt event.MemberVoiceStateChanged) error {
	if !evt.Moved() {
		return nil
	}

	var joinErr, leaveErr error
	if evt.After != nil && l.registry.Contains(evt.After.ID) {
		joinErr = l.handleJoin(ctx, evt.GuildID, evt.MemberID, evt.After.ID)
	}
	if evt.Before != nil && evt.Before.Members == 0 {
		leaveErr = l.handleEmpty(ctx, evt.Before.ID)
	}
	return errors.Join(joinErr, leaveErr)
}

// handleJoin spawns a temporary channel for a member who joined a template and moves the member there.
// The sequence is reserved before the clone so concurrent joins never share a name.
func (l *Lifecycle) handleJoin(ctx context.Context, guildID, memberID, templateID string) error {
	if l.onCooldown(memberID) {
		return l.moveToFallback(ctx, guildID, memberID)
	}

	tc, err := l.registry.Snapshot(templateID)
	if err != nil {
		return err
	}
	seq, err := l.registry.AllocateSequence(templateID)
	if err != nil {
		return err
	}

	name := domain.TempChannelName(tc.DisplayName, seq)
	childID, err := l.cloneChannel(ctx, templateID, name)
	if err != nil {
		_ = l.registry.CancelSequence(templateID, seq)
		return err
	}

	// Tracked before it becomes a child, so a concurrent cascade always finds it.
	l.tracker.Put(childID, templateID, seq)
	if err := l.registry.AddChild(templateID, childID, seq); err != nil {
		// Template deleted while the clone was in flight.
		if _, ok := l.tracker.Remove(childID); ok {
			if derr := l.cleanupChannel(ctx, childID); derr != nil {
				l.log.Warn("Failed to delete clone of removed template", "channel_id", childID, "err", derr)
				l.tracker.Put(childID, templateID, seq)
			}
		}
		return err
	}
	l.log.Info("Temp channel created", "template_id", templateID, "channel_id", childID, "name", name)

	if err := l.moveMember(ctx, guildID, memberID, childID); err != nil {
		l.discardChild(ctx, templateID, childID)
		return err
	}
	return nil
}

// discardChild undoes a child whose member could not be moved in. Its sequence is not reused.
// If the platform keeps the channel, it is tracked again so shutdown can reap it.
func (l *Lifecycle) discardChild(ctx context.Context, templateID, childID string) {
	tc, ok := l.tracker.Remove(childID)
	if !ok {
		return
	}
	seq, err := l.registry.RemoveChild(templateID, childID)
	if derr := l.cleanupChannel(ctx, childID); derr != nil {
		l.log.Warn("Failed to delete unused temp channel", "channel_id", childID, "err", derr)
		if err == nil {
			_ = l.registry.AddChild(templateID, childID, seq)
		}
		l.tracker.Put(childID, templateID, tc.Sequence)
		return
	}
	if err == nil {
		_ = l.registry.CancelSequence(templateID, seq)
	}
}

// cleanupChannel deletes a channel on behalf of an operation that may already be cancelled,
// typically a join interrupted by shutdown. A channel already gone is not an error.
func (l *Lifecycle) cleanupChannel(ctx context.Context, channelID string) error {
	err := l.deleteChannel(context.WithoutCancel(ctx), channelID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	return err
}

// handleEmpty tears down a tracked temporary channel nobody is connected to anymore.
// If the platform refuses the delete, the channel is tracked again so shutdown can retry.
func (l *Lifecycle) handleEmpty(ctx context.Context, channelID string) error {
	tc, ok := l.tracker.Remove(channelID)
	if !ok {
		return nil
	}

	seq, err := l.registry.RemoveChild(tc.TemplateID, tc.ID)
	if err != nil {
		// The template cascade owns the deletion.
		l.log.Debug("Temp channel without template", "channel_id", tc.ID, "err", err)
		return nil
	}

	if err := l.deleteChannel(ctx, tc.ID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		if rerr := l.registry.AddChild(tc.TemplateID, tc.ID, seq); rerr == nil {
			l.tracker.Put(tc.ID, tc.TemplateID, seq)
		}
		return err
	}

	if err := l.registry.ReleaseSequence(tc.TemplateID, seq); err != nil {
		l.log.Debug("Sequence released after template removal", "template_id", tc.TemplateID, "err", err)
	}
	l.log.Info("Temp channel deleted", "template_id", tc.TemplateID, "channel_id", tc.ID, "sequence", seq)
	return nil
}

func (l *Lifecycle) handleChannelDeleted(ctx context.Context, evt event.ChannelDeleted) error {
	if l.registry.Contains(evt.ChannelID) {
		err := l.DeleteTemplate(ctx, evt.ChannelID)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}

	// A temporary channel removed by hand: forget it without a platform call.
	tc, ok := l.tracker.Remove(evt.ChannelID)
	if !ok {
		return nil
	}
	if seq, err := l.registry.RemoveChild(tc.TemplateID, tc.ID); err == nil {
		_ = l.registry.ReleaseSequence(tc.TemplateID, seq)
	}
	l.log.Info("Temp channel deleted externally", "template_id", tc.TemplateID, "channel_id", tc.ID)
	return nil
}

// onCooldown records the join and reports whether the member joined a template too recently.
func (l *Lifecycle) onCooldown(memberID string) bool {
	if l.joinCooldown <= 0 {
		return false
	}
	l.cooldownMu.Lock()
	defer l.cooldownMu.Unlock()

	now := l.now()
	if last, ok := l.lastJoin[memberID]; ok && now.Sub(last) < l.joinCooldown {
		return true
	}
	for id, at := range l.lastJoin {
		if now.Sub(at) >= l.joinCooldown {
			delete(l.lastJoin, id)
		}
	}
	l.lastJoin[memberID] = now
	return false
}

func (l *Lifecycle) moveToFallback(ctx context.Context, guildID, memberID string) error {
	fallback, err := l.store.GetFallbackChannelID()
	if err != nil {
		return fmt.Errorf("%w: fallback channel: %w", apperrors.ErrConfigPersistence, err)
	}
	if fallback == nil {
		l.log.Debug("Member on cooldown, no fallback channel", "member_id", memberID)
		return nil
	}
	l.log.Debug("Member on cooldown, moving to fallback", "member_id", memberID, "channel_id", *fallback)
	return l.moveMember(ctx, guildID, memberID, *fallback)
}

// persist retries a store write a bounded number of times.
func (l *Lifecycle) persist(ctx context.Context, write func() error) error {
	var err error
	for attempt := 1; attempt <= l.persistRetries; attempt++ {
		if err = write(); err == nil {
			return nil
		}
		l.log.Warn("Config write failed", "attempt", attempt, "err", err)
		if attempt == l.persistRetries {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", apperrors.ErrConfigPersistence, ctx.Err())
		case <-time.After(time.Duration(attempt) * persistBackoff):
		}
	}
	return fmt.Errorf("%w: %w", apperrors.ErrConfigPersistence, err)
}

func (l *Lifecycle) platformCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.platformTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, l.platformTimeout)
}

func (l *Lifecycle) lookup(ctx context.Context, channelID string) (domain.ChannelInfo, error) {
	opCtx, cancel := l.platformCtx(ctx)
	defer cancel()
	info, err := l.gateway.LookupChannel(opCtx, channelID)
	return info, platformError("lookup", channelID, err)
}

func (l *Lifecycle) cloneChannel(ctx context.Context, templateID, name string) (string, error) {
	opCtx, cancel := l.platformCtx(ctx)
	defer cancel()
	id, err := l.gateway.CloneChannel(opCtx, templateID, name)
	return id, platformError("clone", templateID, err)
}

func (l *Lifecycle) moveMember(ctx context.Context, guildID, memberID, channelID string) error {
	opCtx, cancel := l.platformCtx(ctx)
	defer cancel()
	return platformError("move member to", channelID, l.gateway.MoveMember(opCtx, guildID, memberID, channelID))
}

func (l *Lifecycle) deleteChannel(ctx context.Context, channelID string) error {
	opCtx, cancel := l.platformCtx(ctx)
	defer cancel()
	return platformError("delete", channelID, l.gateway.DeleteChannel(opCtx, channelID))
}

// platformError keeps ErrNotFound visible and classifies everything else as ErrPlatformOperation.
func platformError(op, channelID string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrPlatformOperation) {
		return fmt.Errorf("%s %s: %w", op, channelID, err)
	}
	return fmt.Errorf("%w: %s %s: %w", apperrors.ErrPlatformOperation, op, channelID, err)
}

func (l *Lifecycle) Templates() int    { return l.registry.Len() }
func (l *Lifecycle) TempChannels() int { return l.tracker.Len() }
