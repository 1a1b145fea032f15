package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/setting"
)

// Setting keys. Persisted in the database so operators can flip them at
// runtime without a deploy.
const (
	SettingMailboxPollEnabled = "mailbox_poll_enabled"
)

// SettingService reads and writes persisted runtime toggles.
type SettingService struct {
	client *ent.Client
}

// NewSettingService creates a new SettingService.
func NewSettingService(client *ent.Client) *SettingService {
	return &SettingService{client: client}
}

// Get returns a setting value; ok is false when the key has never been set.
func (s *SettingService) Get(ctx context.Context, key string) (string, bool, error) {
	row, err := s.client.Setting.Query().
		Where(setting.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	return row.Value, true, nil
}

// GetBool returns a boolean setting, falling back to defaultVal when unset
// or unparsable.
func (s *SettingService) GetBool(ctx context.Context, key string, defaultVal bool) (bool, error) {
	val, ok, err := s.Get(ctx, key)
	if err != nil {
		return defaultVal, err
	}
	if !ok {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal, nil
	}
	return b, nil
}

// Set upserts a setting value.
func (s *SettingService) Set(ctx context.Context, key, value string) error {
	err := s.client.Setting.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(setting.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to write setting %q: %w", key, err)
	}
	return nil
}

// SetBool upserts a boolean setting.
func (s *SettingService) SetBool(ctx context.Context, key string, value bool) error {
	return s.Set(ctx, key, strconv.FormatBool(value))
}
