package runtime

import (
	"autochannel/domain"
	"autochannel/errors"
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// templateEntry carries its own lock so that templates never contend with each other.
// A sequence is "held" while it is reserved (clone in flight), live (in children)
// or draining (platform delete in flight). nextSequence never goes below a held value.
type templateEntry struct {
	mu           sync.Mutex
	displayName  string
	nextSequence int
	children     []string
	sequences    map[string]int
	reserved     map[int]struct{}
	draining     map[int]struct{}
	removed      bool
}

// Registry is the in-memory table of template channels.
// The map lock only guards insertion, removal and lookup of entries;
// every other operation runs under the per-template lock.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]*templateEntry
}

func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]*templateEntry)}
}

// Register inserts a template with nextSequence = 1 and no children.
func (r *Registry) Register(templateID, displayName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[templateID]; ok {
		return fmt.Errorf("%w: %s", errors.ErrAlreadyRegistered, templateID)
	}
	r.templates[templateID] = &templateEntry{
		displayName:  displayName,
		nextSequence: 1,
		sequences:    make(map[string]int),
		reserved:     make(map[int]struct{}),
		draining:     make(map[int]struct{}),
	}
	return nil
}

// Unregister removes the template and returns its live children for cascade deletion.
// Operations still holding the entry observe it as removed and fail with ErrNotFound.
func (r *Registry) Unregister(templateID string) ([]string, error) {
	r.mu.Lock()
	entry, ok := r.templates[templateID]
	if ok {
		delete(r.templates, templateID)
	}
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: template %s", errors.ErrNotFound, templateID)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.removed = true
	return append([]string(nil), entry.children...), nil
}

func (r *Registry) Contains(templateID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.templates[templateID]
	return ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// AllocateSequence reserves the next sequence of a template and returns it.
// The reservation lasts until AddChild or CancelSequence.
func (r *Registry) AllocateSequence(templateID string) (int, error) {
	entry, err := r.lockEntry(templateID)
	if err != nil {
		return 0, err
	}
	defer entry.mu.Unlock()

	seq := entry.nextSequence
	entry.nextSequence++
	entry.reserved[seq] = struct{}{}
	return seq, nil
}

// AddChild turns a reserved (or draining, when a delete is undone) sequence into a live child.
func (r *Registry) AddChild(templateID, childID string, seq int) error {
	entry, err := r.lockEntry(templateID)
	if err != nil {
		return err
	}
	defer entry.mu.Unlock()

	delete(entry.reserved, seq)
	delete(entry.draining, seq)
	entry.children = append(entry.children, childID)
	entry.sequences[childID] = seq
	return nil
}

// CancelSequence drops a sequence whose child never became usable. The counter
// is not rolled back: a gap in numbering is fine, a duplicate is not.
func (r *Registry) CancelSequence(templateID string, seq int) error {
	entry, err := r.lockEntry(templateID)
	if err != nil {
		return err
	}
	defer entry.mu.Unlock()

	delete(entry.reserved, seq)
	delete(entry.draining, seq)
	return nil
}

// RemoveChild detaches a child and keeps its sequence draining until ReleaseSequence.
func (r *Registry) RemoveChild(templateID, childID string) (int, error) {
	entry, err := r.lockEntry(templateID)
	if err != nil {
		return 0, err
	}
	defer entry.mu.Unlock()

	seq, ok := entry.sequences[childID]
	if !ok {
		return 0, fmt.Errorf("%w: child %s of template %s", errors.ErrNotFound, childID, templateID)
	}
	delete(entry.sequences, childID)
	entry.children = lo.Without(entry.children, childID)
	entry.draining[seq] = struct{}{}
	return seq, nil
}

// ReleaseSequence frees a draining sequence and compacts the counter:
// when nothing above the released value is still held, nextSequence drops
// to one past the highest held value so the freed tail slot is reused.
func (r *Registry) ReleaseSequence(templateID string, seq int) error {
	entry, err := r.lockEntry(templateID)
	if err != nil {
		return err
	}
	defer entry.mu.Unlock()

	delete(entry.draining, seq)
	if highest := entry.highestHeld(); seq > highest {
		entry.nextSequence = highest + 1
	}
	return nil
}

func (r *Registry) Snapshot(templateID string) (domain.TemplateChannel, error) {
	entry, err := r.lockEntry(templateID)
	if err != nil {
		return domain.TemplateChannel{}, err
	}
	defer entry.mu.Unlock()
	return entry.snapshot(templateID), nil
}

// Templates returns a copy of every registered template, ordered by id.
func (r *Registry) Templates() []domain.TemplateChannel {
	r.mu.RLock()
	ids := lo.Keys(r.templates)
	r.mu.RUnlock()
	sort.Strings(ids)

	res := make([]domain.TemplateChannel, 0, len(ids))
	for _, id := range ids {
		if tc, err := r.Snapshot(id); err == nil {
			res = append(res, tc)
		}
	}
	return res
}

// lockEntry returns the entry of a template with its lock held.
func (r *Registry) lockEntry(templateID string) (*templateEntry, error) {
	r.mu.RLock()
	entry, ok := r.templates[templateID]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: template %s", errors.ErrNotFound, templateID)
	}
	entry.mu.Lock()
	if entry.removed {
		entry.mu.Unlock()
		return nil, fmt.Errorf("%w: template %s", errors.ErrNotFound, templateID)
	}
	return entry, nil
}

func (e *templateEntry) highestHeld() int {
	held := append(lo.Values(e.sequences), lo.Keys(e.reserved)...)
	held = append(held, lo.Keys(e.draining)...)
	return lo.Max(held)
}

func (e *templateEntry) snapshot(id string) domain.TemplateChannel {
	return domain.TemplateChannel{
		ID:           id,
		DisplayName:  e.displayName,
		NextSequence: e.nextSequence,
		Children:     append([]string(nil), e.children...),
	}
}
