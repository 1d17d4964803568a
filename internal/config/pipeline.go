package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Processing guard modes
const (
	GuardNone   = "none"
	GuardRecord = "record"
	GuardRedis  = "redis"
)

// PipelineConfig represents the tunables of the transcription pipeline
type PipelineConfig struct {
	ScratchDir      string           `yaml:"scratch_dir,omitempty"`
	ProcessingGuard string           `yaml:"processing_guard,omitempty"`
	GuardTTL        time.Duration    `yaml:"guard_ttl,omitempty"`
	Fetch           FetchConfig      `yaml:"fetch,omitempty"`
	Extract         ExtractConfig    `yaml:"extract,omitempty"`
	Transcribe      TranscribeConfig `yaml:"transcribe,omitempty"`
}

// FetchConfig configures the video download
type FetchConfig struct {
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// ExtractConfig configures the ffmpeg invocation
type ExtractConfig struct {
	Binary     string        `yaml:"binary,omitempty"`
	SampleRate int           `yaml:"sample_rate,omitempty"`
	Channels   int           `yaml:"channels,omitempty"`
	Bitrate    string        `yaml:"bitrate,omitempty"`
	Format     string        `yaml:"format,omitempty"`
	Timeout    time.Duration `yaml:"timeout,omitempty"`
}

// TranscribeConfig configures the speech-to-text call
type TranscribeConfig struct {
	Model    string        `yaml:"model,omitempty"`
	Language string        `yaml:"language,omitempty"`
	Prompt   string        `yaml:"prompt,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
}

// DefaultPipelineConfig returns the defaults: 16 kHz mono 32 kbps mp3, no
// timeouts, no processing guard.
func DefaultPipelineConfig() *PipelineConfig {
	c := &PipelineConfig{}
	c.setDefaults()
	return c
}

// LoadPipelineConfig loads pipeline configuration from a YAML file. An empty
// path yields the defaults.
func LoadPipelineConfig(configPath string) (*PipelineConfig, error) {
	if configPath == "" {
		return DefaultPipelineConfig(), nil
	}

	// Expand environment variables in path
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand ${VAR} references in values before parsing
	data = []byte(os.ExpandEnv(string(data)))

	var config PipelineConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// SavePipelineConfig saves pipeline configuration to a YAML file
func SavePipelineConfig(config *PipelineConfig, configPath string) error {
	configPath = os.ExpandEnv(configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setDefaults sets default values for the configuration
func (c *PipelineConfig) setDefaults() {
	if c.ScratchDir == "" {
		c.ScratchDir = filepath.Join(os.TempDir(), "video-transcriber")
	}
	if c.ProcessingGuard == "" {
		c.ProcessingGuard = GuardNone
	}
	c.ProcessingGuard = strings.ToLower(c.ProcessingGuard)
	if c.GuardTTL == 0 {
		c.GuardTTL = time.Hour
	}
	if c.Extract.Binary == "" {
		c.Extract.Binary = "ffmpeg"
	}
	if c.Extract.SampleRate == 0 {
		c.Extract.SampleRate = 16000
	}
	if c.Extract.Channels == 0 {
		c.Extract.Channels = 1
	}
	if c.Extract.Bitrate == "" {
		c.Extract.Bitrate = "32k"
	}
	if c.Extract.Format == "" {
		c.Extract.Format = "mp3"
	}
	if c.Transcribe.Model == "" {
		c.Transcribe.Model = "whisper-1"
	}
}

// Validate validates the configuration
func (c *PipelineConfig) Validate() error {
	switch c.ProcessingGuard {
	case GuardNone, GuardRecord, GuardRedis:
	default:
		return fmt.Errorf("unknown processing_guard %q (want none, record or redis)", c.ProcessingGuard)
	}

	for name, timeout := range map[string]time.Duration{
		"fetch":      c.Fetch.Timeout,
		"extract":    c.Extract.Timeout,
		"transcribe": c.Transcribe.Timeout,
		"guard_ttl":  c.GuardTTL,
	} {
		if err := ValidateTimeout(timeout, name); err != nil {
			return err
		}
	}

	if c.Extract.SampleRate < 0 || c.Extract.Channels < 0 {
		return fmt.Errorf("extract sample_rate and channels must be positive")
	}

	return nil
}
