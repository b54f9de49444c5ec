// Package config loads runtime settings and the seed data for a canteen session.
package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"canteen-order-system/models"
	"canteen-order-system/stores"

	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath = "CANTEEN_CONFIG"
	EnvLogLevel   = "CANTEEN_LOG_LEVEL"
)

//go:embed seeds/*.yaml
var seeds embed.FS

// Config holds all configuration for a canteen process
type Config struct {
	Log       LogConfig      `yaml:"log"`
	Orders    OrdersConfig   `yaml:"orders"`
	Menu      []MenuSeed     `yaml:"menu"`
	Consumers []ConsumerSeed `yaml:"consumers"`
	Users     []UserSeed     `yaml:"users"`
}

// LogConfig controls the structured logger
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// OrdersConfig controls order ids and account hashing
type OrdersConfig struct {
	FirstID      int `yaml:"first_id"`
	PasswordCost int `yaml:"password_cost"`
}

type MenuSeed struct {
	ID       int     `yaml:"id"`
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"`
	Price    float64 `yaml:"price"`
	Stock    int     `yaml:"stock"`
}

type ConsumerSeed struct {
	UID  string `yaml:"uid"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type UserSeed struct {
	UID      string `yaml:"uid"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Embedded returns one of the built-in seeds ("canteen" or "kiosk")
func Embedded(name string) (*Config, error) {
	data, err := seeds.ReadFile("seeds/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown built-in seed %q: %w", name, err)
	}
	return Parse(data)
}

// FromEnv loads the file named by CANTEEN_CONFIG, or the built-in seed when it is unset.
// CANTEEN_LOG_LEVEL overrides the configured log level.
func FromEnv(path, seed string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = Load(path)
	} else {
		cfg, err = Embedded(seed)
	}
	if err != nil {
		return nil, err
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}
	return cfg, nil
}

// Parse decodes and validates a YAML document
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Orders.FirstID < 1 {
		c.Orders.FirstID = 1
	}
}

// Validate checks the seed data for problems the stores would reject later
func (c *Config) Validate() error {
	var errs []error

	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	menuIDs := make(map[int]bool)
	for i, m := range c.Menu {
		if menuIDs[m.ID] {
			errs = append(errs, fmt.Errorf("menu[%d]: duplicate id %d", i, m.ID))
		}
		menuIDs[m.ID] = true
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("menu[%d]: name is required", i))
		}
		if m.Price < 0 {
			errs = append(errs, fmt.Errorf("menu[%d]: price must not be negative", i))
		}
		if m.Stock < 0 {
			errs = append(errs, fmt.Errorf("menu[%d]: stock must not be negative", i))
		}
		if _, err := models.ParseCategory(m.Category); err != nil {
			errs = append(errs, fmt.Errorf("menu[%d]: %w", i, err))
		}
	}

	uids := make(map[string]bool)
	for i, cs := range c.Consumers {
		if cs.UID == "" {
			errs = append(errs, fmt.Errorf("consumers[%d]: uid is required", i))
		}
		if uids[cs.UID] {
			errs = append(errs, fmt.Errorf("consumers[%d]: duplicate uid %s", i, cs.UID))
		}
		uids[cs.UID] = true
		if _, err := models.ParseConsumerType(cs.Type); err != nil {
			errs = append(errs, fmt.Errorf("consumers[%d]: %w", i, err))
		}
	}

	usernames := make(map[string]bool)
	for i, u := range c.Users {
		if u.Username == "" {
			errs = append(errs, fmt.Errorf("users[%d]: username is required", i))
		}
		if usernames[u.Username] {
			errs = append(errs, fmt.Errorf("users[%d]: duplicate username %s", i, u.Username))
		}
		usernames[u.Username] = true
		if _, err := models.ParseRole(u.Role); err != nil {
			errs = append(errs, fmt.Errorf("users[%d]: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

// Seed fills the stores with the configured menu, consumers and users
func (c *Config) Seed(menu *stores.MenuStore, consumers *stores.ConsumerStore, users *stores.UserStore) error {
	for _, m := range c.Menu {
		category, err := models.ParseCategory(m.Category)
		if err != nil {
			return err
		}
		if _, err := menu.Add(models.MenuItem{
			ID:       m.ID,
			Name:     m.Name,
			Category: category,
			Price:    m.Price,
			Stock:    m.Stock,
		}); err != nil {
			return fmt.Errorf("failed to seed menu: %w", err)
		}
	}

	for _, cs := range c.Consumers {
		t, err := models.ParseConsumerType(cs.Type)
		if err != nil {
			return err
		}
		if _, err := consumers.Add(models.Consumer{UID: cs.UID, Name: cs.Name, Type: t}); err != nil {
			return fmt.Errorf("failed to seed consumers: %w", err)
		}
	}

	if users == nil {
		return nil
	}
	for _, u := range c.Users {
		role, err := models.ParseRole(u.Role)
		if err != nil {
			return err
		}
		if _, err := users.Add(u.UID, u.Name, u.Username, u.Password, role); err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
	}
	return nil
}

// NewLogger builds the JSON logger. Logs go to the configured file, or to
// fallback when none is set, so they stay out of the interactive output.
// The returned close function releases the file, if one was opened.
func (c *Config) NewLogger(fallback io.Writer, service string) (*slog.Logger, func() error, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	out := fallback
	closeFn := func() error { return nil }
	if c.Log.File != "" {
		f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("service", service), closeFn, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}
