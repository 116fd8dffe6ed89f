package runtime

import (
	"autochannel/domain"
	"autochannel/errors"
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// Tracker maps a temporary channel back to its template and sequence.
// It holds no policy.
type Tracker struct {
	mu       sync.RWMutex
	channels map[string]domain.TempChannel
}

func NewTracker() *Tracker {
	return &Tracker{channels: make(map[string]domain.TempChannel)}
}

func (t *Tracker) Put(channelID, templateID string, sequence int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.channels[channelID] = domain.TempChannel{ID: channelID, TemplateID: templateID, Sequence: sequence}
}

func (t *Tracker) Get(channelID string) (domain.TempChannel, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	tc, ok := t.channels[channelID]
	if !ok {
		return domain.TempChannel{}, fmt.Errorf("%w: temp channel %s", errors.ErrNotFound, channelID)
	}
	return tc, nil
}

func (t *Tracker) Contains(channelID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.channels[channelID]
	return ok
}

// Remove takes the entry out of the table. Only one caller observes ok == true
// for a given channel, which makes it the owner of the teardown.
func (t *Tracker) Remove(channelID string) (domain.TempChannel, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	tc, ok := t.channels[channelID]
	if ok {
		delete(t.channels, channelID)
	}
	return tc, ok
}

// All returns every tracked channel ordered by id.
func (t *Tracker) All() []domain.TempChannel {
	t.mu.RLock()
	res := lo.Values(t.channels)
	t.mu.RUnlock()
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.channels)
}
