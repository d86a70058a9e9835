// Package config loads the compiler's TOML-backed configuration:
// the data/temporary address-area layout, the output directory, and
// the inspector's display preferences, per SPEC_FULL.md §2.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lookbusy1344/minic/symtab"
)

// Config holds the settings main and the inspector read at startup.
// Address-area fields default to the values spec §4.B names; the
// inspector's status line shows them, and the symbol table does not
// read them.
type Config struct {
	Addresses AddressConfig   `toml:"addresses"`
	Output    OutputConfig    `toml:"output"`
	Inspector InspectorConfig `toml:"inspector"`
}

// AddressConfig mirrors symtab's allocator constants. Changing these
// values does not move the data/temporary regions: symtab allocates
// from its own constants.
type AddressConfig struct {
	DataBase    int `toml:"data_base"`
	DefaultSize int `toml:"default_size"`
	TempBase    int `toml:"temp_base"`
	TempSize    int `toml:"temp_size"`
}

// OutputConfig controls where the six output artifacts land.
type OutputConfig struct {
	Directory string `toml:"directory"`
}

// InspectorConfig controls the interactive TUI's startup behaviour.
type InspectorConfig struct {
	Enabled         bool `toml:"enabled"`
	BreakOnFirstRow bool `toml:"break_on_first_row"`
}

// Default returns the configuration spec §4.B's constants describe.
func Default() *Config {
	return &Config{
		Addresses: AddressConfig{
			DataBase:    symtab.DataBase,
			DefaultSize: symtab.DefaultSize,
			TempBase:    symtab.TempBase,
			TempSize:    symtab.TempSize,
		},
		Output: OutputConfig{Directory: "output"},
		Inspector: InspectorConfig{
			Enabled:         false,
			BreakOnFirstRow: false,
		},
	}
}

// Load reads a TOML configuration file at path, starting from
// Default() so an unset field keeps its default rather than zeroing
// out.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating or truncating the file.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}
