package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/test/util"
)

func TestSettings_RoundTrip(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSettingService(client)
	ctx := context.Background()

	_, ok, err := svc.Get(ctx, SettingMailboxPollEnabled)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.SetBool(ctx, SettingMailboxPollEnabled, true))

	enabled, err := svc.GetBool(ctx, SettingMailboxPollEnabled, false)
	require.NoError(t, err)
	assert.True(t, enabled)

	// Upsert overwrites
	require.NoError(t, svc.SetBool(ctx, SettingMailboxPollEnabled, false))
	enabled, err = svc.GetBool(ctx, SettingMailboxPollEnabled, true)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestSettings_DefaultWhenUnset(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSettingService(client)

	enabled, err := svc.GetBool(context.Background(), SettingMailboxPollEnabled, true)
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestSettings_UnparsableBoolFallsBack(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSettingService(client)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, SettingMailboxPollEnabled, "maybe"))

	enabled, err := svc.GetBool(ctx, SettingMailboxPollEnabled, false)
	require.NoError(t, err)
	assert.False(t, enabled)
}
