package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ArtNet holds the lighting-console listener settings.
// Channel numbers are 1-indexed DMX slots; the pair addresses a 16-bit
// brightness value with the big byte in ChannelHigh.
type ArtNet struct {
	// Enabled toggles the UDP listener at server startup.
	Enabled bool `yaml:"enabled"`
	// Port is the UDP port to listen on.
	Port int `yaml:"port"`
	// Universe is the Art-Net universe to accept; packets for other universes are filtered.
	Universe int `yaml:"universe"`
	// ChannelHigh is the DMX slot carrying the high byte of the brightness value.
	ChannelHigh int `yaml:"channel_high"`
	// ChannelLow is the DMX slot carrying the low byte of the brightness value.
	ChannelLow int `yaml:"channel_low"`
}

// Config holds connection and stage parameters shared by the showboard binaries.
type Config struct {
	// ServerAddress is the gRPC server address for board service connections.
	ServerAddress string `yaml:"server_addr"`
	// ServerUpdateFolder is the URL where update artifacts are hosted.
	ServerUpdateFolder string `yaml:"update_folder"`
	// ScheduleFile is the path to the YAML file storing the act schedule.
	ScheduleFile string `yaml:"schedule_file"`
	// StageName is the display name of the stage this board tracks.
	StageName string `yaml:"stage_name"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout"`
	// ArtNet configures the DMX brightness listener.
	ArtNet ArtNet `yaml:"artnet"`
	// UpdateType is set at runtime by the updater to pick a role-specific
	// file set from the update manifest. It is not persisted to YAML.
	UpdateType string `yaml:"-"`
}

const (
	// DefaultConfigFilename is the default filename for connection settings.
	DefaultConfigFilename = "showboard-settings.yaml"

	// DefaultScheduleFilename is the default filename for the act schedule YAML.
	DefaultScheduleFilename = "showboard-schedule.yaml"

	// DefaultStageName is used when the settings file does not name the stage.
	DefaultStageName = "Main Stage"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultArtNetPort is the standard Art-Net UDP port.
	DefaultArtNetPort = 6454

	// DefaultChannelHigh and DefaultChannelLow are the DMX slots read by default.
	DefaultChannelHigh = 1
	DefaultChannelLow  = 2

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	// maxUniverse is the highest addressable Art-Net universe.
	maxUniverse = 32767

	// maxDMXChannel is the highest 1-indexed DMX slot in a universe.
	maxDMXChannel = 512

	// maxUDPPort is the highest valid UDP port number.
	maxUDPPort = 65535
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
	// errChannelOutOfRange is returned when a DMX channel is outside 1..512.
	errChannelOutOfRange = errors.New("DMX channel must be within 1..512")
	// errChannelsEqual is returned when both brightness bytes map to one slot.
	errChannelsEqual = errors.New("high and low DMX channels must differ")
	// errUniverseOutOfRange is returned when the universe is outside 0..32767.
	errUniverseOutOfRange = errors.New("Art-Net universe must be within 0..32767")
	// errPortOutOfRange is returned when the UDP port is outside 1..65535.
	errPortOutOfRange = errors.New("Art-Net port must be within 1..65535")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and formatting,
// filling defaults where the file left values unset. DMX misconfiguration is
// rejected here so the packet decode path never has to re-check it.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	// Set default timeout if not specified.
	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	// Set default schedule file if not specified.
	if settings.ScheduleFile == "" {
		settings.ScheduleFile = DefaultScheduleFilename
	}

	if settings.StageName == "" {
		settings.StageName = DefaultStageName
	}

	if err := validateArtNet(&settings.ArtNet); err != nil {
		return err
	}

	if settings.ServerUpdateFolder == "" {
		return nil
	}

	if _, err := url.ParseRequestURI(settings.ServerUpdateFolder); err != nil {
		return fmt.Errorf("invalid update folder URI: %w", err)
	}

	return nil
}

// validateArtNet fills defaults and rejects DMX addressing mistakes up front.
func validateArtNet(a *ArtNet) error {
	if a.Port == 0 {
		a.Port = DefaultArtNetPort
	}

	if a.ChannelHigh == 0 {
		a.ChannelHigh = DefaultChannelHigh
	}

	if a.ChannelLow == 0 {
		a.ChannelLow = DefaultChannelLow
	}

	if a.Port < 1 || a.Port > maxUDPPort {
		return fmt.Errorf("port %d: %w", a.Port, errPortOutOfRange)
	}

	if a.Universe < 0 || a.Universe > maxUniverse {
		return fmt.Errorf("universe %d: %w", a.Universe, errUniverseOutOfRange)
	}

	for _, channel := range []int{a.ChannelHigh, a.ChannelLow} {
		if channel < 1 || channel > maxDMXChannel {
			return fmt.Errorf("channel %d: %w", channel, errChannelOutOfRange)
		}
	}

	if a.ChannelHigh == a.ChannelLow {
		return errChannelsEqual
	}

	return nil
}
