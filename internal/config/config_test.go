package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields and format validations for settings.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing socket.
	settings := new(Config)

	err := Validate(settings)
	require.Error(t, err)

	// Bad socket.
	settings = &Config{
		ServerAddress: "bad:address",
	}

	err = Validate(settings)
	require.Error(t, err)

	// Okay with update folder; defaults are filled in.
	settings = &Config{
		ServerAddress:      "127.0.0.1:0",
		ServerUpdateFolder: "https://example.com/x",
	}

	err = Validate(settings)
	require.NoError(t, err)
	require.Equal(t, DefaultTimeout, settings.Timeout)
	require.Equal(t, DefaultScheduleFilename, settings.ScheduleFile)
	require.Equal(t, DefaultStageName, settings.StageName)
	require.Equal(t, DefaultArtNetPort, settings.ArtNet.Port)
	require.Equal(t, DefaultChannelHigh, settings.ArtNet.ChannelHigh)
	require.Equal(t, DefaultChannelLow, settings.ArtNet.ChannelLow)
}

// TestValidate_ArtNet rejects DMX misconfiguration before the server starts.
func TestValidate_ArtNet(t *testing.T) {
	t.Parallel()

	base := func() *Config {
		return &Config{ServerAddress: "127.0.0.1:0"}
	}

	// Channel above 512.
	cfg := base()
	cfg.ArtNet.ChannelHigh = 513

	require.ErrorIs(t, Validate(cfg), errChannelOutOfRange)

	// Negative universe.
	cfg = base()
	cfg.ArtNet.Universe = -1

	require.ErrorIs(t, Validate(cfg), errUniverseOutOfRange)

	// Universe above the Art-Net address space.
	cfg = base()
	cfg.ArtNet.Universe = 32768

	require.ErrorIs(t, Validate(cfg), errUniverseOutOfRange)

	// High and low byte on the same slot.
	cfg = base()
	cfg.ArtNet.ChannelHigh = 7
	cfg.ArtNet.ChannelLow = 7

	require.ErrorIs(t, Validate(cfg), errChannelsEqual)

	// Port outside UDP range.
	cfg = base()
	cfg.ArtNet.Port = 70000

	require.ErrorIs(t, Validate(cfg), errPortOutOfRange)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		ServerAddress:      "127.0.0.1:50051",
		ServerUpdateFolder: "https://updates.local/",
		StageName:          "Desert Stage",
		ArtNet: ArtNet{
			Enabled:     true,
			Universe:    3,
			ChannelHigh: 10,
			ChannelLow:  11,
		},
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings.ServerAddress, loaded.ServerAddress)
	require.Equal(t, settings.ServerUpdateFolder, loaded.ServerUpdateFolder)
	require.Equal(t, "Desert Stage", loaded.StageName)
	require.True(t, loaded.ArtNet.Enabled)
	require.Equal(t, 3, loaded.ArtNet.Universe)
	require.Equal(t, 10, loaded.ArtNet.ChannelHigh)
	require.Equal(t, 11, loaded.ArtNet.ChannelLow)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}
