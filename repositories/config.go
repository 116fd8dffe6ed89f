package repositories

import (
	"autochannel/domain"
	apperrors "autochannel/errors"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	TemplatePrefix = "template:"
	MessagePrefix  = "message:"
	FallbackKey    = "fallback"
)

// ConfigRepository persists the autochannel configuration in BadgerDB.
// Layout:
//
//	template:{channel_id} -> display name
//	message:{key}         -> message template
//	fallback              -> fallback channel id
//
// Values are protobuf StringValue. Sequence counters and children are never persisted.
type ConfigRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewConfigRepository(db *badger.DB, log *slog.Logger) *ConfigRepository {
	return &ConfigRepository{db: db, log: log}
}

// ListTemplates scans every template record. Key order is lexicographic on the channel id.
func (c *ConfigRepository) ListTemplates() ([]domain.TemplateChannel, error) {
	var templates []domain.TemplateChannel
	prefix := []byte(TemplatePrefix)
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id := strings.TrimPrefix(string(item.Key()), TemplatePrefix)
			err := item.Value(func(v []byte) error {
				name, err := unmarshalString(v)
				if err != nil {
					return fmt.Errorf("failed to unmarshal template %s: %w", id, err)
				}
				templates = append(templates, domain.TemplateChannel{ID: id, DisplayName: name})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (c *ConfigRepository) PutTemplate(id, displayName string) error {
	return c.set(TemplatePrefix+id, displayName)
}

// DeleteTemplate is idempotent: deleting an absent template is not an error.
func (c *ConfigRepository) DeleteTemplate(id string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(TemplatePrefix + id))
	})
}

// GetFallbackChannelID returns nil when no fallback channel is configured.
func (c *ConfigRepository) GetFallbackChannelID() (*string, error) {
	id, err := c.get(FallbackKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}
	return &id, nil
}

func (c *ConfigRepository) SetFallbackChannelID(id string) error {
	return c.set(FallbackKey, id)
}

// Message returns the raw template registered under key.
func (c *ConfigRepository) Message(key string) (string, error) {
	msg, err := c.get(MessagePrefix + key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", fmt.Errorf("%w: message %s", apperrors.ErrNotFound, key)
	}
	return msg, err
}

// SeedMessages writes the defaults that are not stored yet, leaving operator edits untouched.
func (c *ConfigRepository) SeedMessages(defaults map[string]string) error {
	seeded := 0
	err := c.db.Update(func(txn *badger.Txn) error {
		for key, msg := range defaults {
			k := []byte(MessagePrefix + key)
			_, err := txn.Get(k)
			if err == nil {
				continue
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
			data, err := proto.Marshal(wrapperspb.String(msg))
			if err != nil {
				return err
			}
			if err := txn.Set(k, data); err != nil {
				return err
			}
			seeded++
		}
		return nil
	})
	if err != nil {
		return err
	}
	c.log.Debug("Messages seeded", "count", seeded)
	return nil
}

func (c *ConfigRepository) set(key, value string) error {
	data, err := proto.Marshal(wrapperspb.String(value))
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (c *ConfigRepository) get(key string) (string, error) {
	var value string
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			value, err = unmarshalString(v)
			return err
		})
	})
	return value, err
}

func unmarshalString(v []byte) (string, error) {
	var pb wrapperspb.StringValue
	if err := proto.Unmarshal(v, &pb); err != nil {
		return "", err
	}
	return pb.GetValue(), nil
}

// DecodeValue renders a stored value for inspection tools.
func DecodeValue(v []byte) string {
	s, err := unmarshalString(v)
	if err != nil {
		return fmt.Sprintf("<undecodable: %v>", err)
	}
	return s
}
