package Records

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// Config is the host-facing form of the container settings, usually embedded
// in the host's own yaml file.
type Config struct {
	QueueCapacity int `yaml:"queue_capacity"`
	ListCapacity  int `yaml:"list_capacity"`
}

func DefaultConfig() Config {
	return Config{QueueCapacity: DefaultCapacity, ListCapacity: DefaultCapacity}
}

// ParseConfig reads yaml bytes over DefaultConfig. Missing keys keep their
// defaults; unknown keys are rejected.
func ParseConfig(b []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.UnmarshalStrict(b, &c); err != nil {
		return Config{}, fmt.Errorf("parse container config: %w", err)
	}
	if err := c.Verify(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Verify checks that both capacities are usable.
func (c Config) Verify() error {
	if c.QueueCapacity < 1 {
		return fmt.Errorf("queue_capacity: %w", &CapacityError{c.QueueCapacity})
	}
	if c.ListCapacity < 1 {
		return fmt.Errorf("list_capacity: %w", &CapacityError{c.ListCapacity})
	}
	return nil
}

func (c Config) QueueOptions(extra ...Option) []Option {
	return append([]Option{WithCapacity(c.QueueCapacity)}, extra...)
}

func (c Config) ListOptions(extra ...Option) []Option {
	return append([]Option{WithCapacity(c.ListCapacity)}, extra...)
}
