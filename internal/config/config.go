package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultProfileName = "default"
	DefaultBaseURL     = "http://localhost:8080"
	DefaultTimeout     = 10

	homeEnv   = "RORIGEN_HOME"
	apiURLEnv = "RORIGEN_API_URL"
)

// Profile points the client at one generator service
type Profile struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

func DefaultProfile() Profile {
	return Profile{
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: DefaultTimeout,
	}
}

type Config struct {
	Profiles      map[string]Profile `yaml:"profiles"`
	ActiveProfile string             `yaml:"active_profile"`
	DownloadDir   string             `yaml:"download_dir,omitempty"`
	Extensions    map[string]string  `yaml:"extensions,omitempty"`
	LogLevel      string             `yaml:"log_level,omitempty"`
	LogFile       string             `yaml:"log_file,omitempty"`

	currentProfile  *Profile
	overrideProfile string // One-run selection, never saved
	baseURLEnv      string
	path            string
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom loads the config file at configPath, creating it with
// defaults when it does not exist.
func LoadConfigFrom(configPath string) (*Config, error) {
	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.path = configPath
	config.baseURLEnv = os.Getenv(apiURLEnv)

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

// UseProfile makes name the active profile. The change is persisted by the
// next Save and replaces any one-run override.
func (c *Config) UseProfile(name string) error {
	if _, exists := c.Profiles[name]; !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	c.overrideProfile = ""
	return c.setCurrentProfile()
}

// OverrideProfile selects name for this process only. ActiveProfile, and so
// the saved file, keeps its value.
func (c *Config) OverrideProfile(name string) error {
	if _, exists := c.Profiles[name]; !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.overrideProfile = name
	return c.setCurrentProfile()
}

// CurrentProfileName is the profile in effect for this process
func (c *Config) CurrentProfileName() string {
	if c.overrideProfile != "" {
		return c.overrideProfile
	}
	return c.ActiveProfile
}

func (c *Config) IsValid() bool {
	return c.GetBaseURL() != ""
}

// GetBaseURL returns the active profile's base URL, RORIGEN_API_URL taking precedence.
func (c *Config) GetBaseURL() string {
	if c.baseURLEnv != "" {
		return c.baseURLEnv
	}
	if c.currentProfile == nil {
		return DefaultBaseURL
	}
	return c.currentProfile.BaseURL
}

func (c *Config) GetTimeout() time.Duration {
	if c.currentProfile == nil || c.currentProfile.TimeoutSeconds <= 0 {
		return DefaultTimeout * time.Second
	}
	return time.Duration(c.currentProfile.TimeoutSeconds) * time.Second
}

// GetLogFile returns the log file path, next to the config file by default
func (c *Config) GetLogFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(filepath.Dir(c.path), "rorigen.log")
}

// ProfileNames returns the profile names in sorted order
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) Path() string {
	return c.path
}

func getConfigPath() (string, error) {
	var configDir string

	// Use RORIGEN_HOME if set, otherwise use user's home directory
	if home := os.Getenv(homeEnv); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".rorigen", "config.yaml"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return createDefaultConfig(configPath)
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			DefaultProfileName: DefaultProfile(),
		},
		ActiveProfile: DefaultProfileName,
		LogLevel:      "info",
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	if c.path == "" {
		configPath, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		c.path = configPath
	}

	return saveConfig(c, c.path)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	if c.overrideProfile != "" {
		if profile, exists := c.Profiles[c.overrideProfile]; exists {
			c.currentProfile = &profile
			return nil
		}
		c.overrideProfile = ""
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// Fall back to the first profile by name
		name := c.ProfileNames()[0]
		c.ActiveProfile = name
		profile = c.Profiles[name]
	}

	c.currentProfile = &profile
	return nil
}
