// Package config loads translator configuration files.
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/0dminnimda/OpenSYCL/backend"
	"github.com/0dminnimda/OpenSYCL/common"
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml"
)

// tomlConfigFile represents the config file as it is encoded in TOML.
type tomlConfigFile struct {
	Target          *tomlTarget           `toml:"target"`
	Kernels         *tomlKernels          `toml:"kernels"`
	Specializations []*tomlSpecialization `toml:"specialization"`
}

// tomlTarget represents the target section as it is encoded in TOML.
type tomlTarget struct {
	Name       string `toml:"name"`
	Translator string `toml:"translator,omitempty"`
	TempDir    string `toml:"temp-dir,omitempty"`
}

// tomlKernels represents the kernel section as it is encoded in TOML.
type tomlKernels struct {
	Names []string `toml:"names"`
}

// tomlSpecialization represents a specialization constant as it is encoded in
// TOML.
type tomlSpecialization struct {
	Global string `toml:"global"`
	Value  uint64 `toml:"value"`
}

// Specialization is a constant value substituted for a named global.
type Specialization struct {
	Global string
	Value  uint64
}

// Config is the validated configuration of a translation.
type Config struct {
	// The name of the selected target.
	TargetName string

	// The path to the external translator.  Empty means the target's default.
	TranslatorPath string

	// The directory for temporary files.  Empty means the system default.
	TempDir string

	// The names of the kernel entry points.
	KernelNames []string

	// The specialization constants in the order they were declared.
	Specializations []Specialization
}

// Default returns the default configuration: the SPIR-V target with its
// default translator.
func Default() *Config {
	return &Config{TargetName: backend.SPIRV.Name}
}

// Load loads and validates the config file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open config file")
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	cfg, err := Parse(buff)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", filepath.Base(path))
	}

	return cfg, nil
}

// FindAndLoad loads the default config file from dir if one exists.  If no
// config file exists, the default configuration is returned.
func FindAndLoad(dir string) (*Config, error) {
	path := filepath.Join(dir, common.ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return nil, errors.Wrap(err, "failed to stat config file")
	}

	return Load(path)
}

// Parse decodes and validates the TOML contents of a config file.
func Parse(buff []byte) (*Config, error) {
	tcf := &tomlConfigFile{}
	if err := toml.Unmarshal(buff, tcf); err != nil {
		return nil, errors.Wrap(err, "malformed config")
	}

	cfg := Default()

	if tcf.Target != nil {
		if tcf.Target.Name != "" {
			cfg.TargetName = tcf.Target.Name
		}

		cfg.TranslatorPath = tcf.Target.Translator
		cfg.TempDir = tcf.Target.TempDir
	}

	if tcf.Kernels != nil {
		cfg.KernelNames = tcf.Kernels.Names
	}

	for _, spec := range tcf.Specializations {
		cfg.Specializations = append(cfg.Specializations, Specialization{
			Global: spec.Global,
			Value:  spec.Value,
		})
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (cfg *Config) Validate() error {
	if _, ok := backend.LookupTarget(cfg.TargetName); !ok {
		names := backend.TargetNames()
		sort.Strings(names)
		return errors.Newf("unknown target `%s` (known targets: %s)", cfg.TargetName, strings.Join(names, ", "))
	}

	if cfg.TranslatorPath != "" && !filepath.IsAbs(cfg.TranslatorPath) {
		return errors.Newf("translator path must be absolute: %s", cfg.TranslatorPath)
	}

	for _, name := range cfg.KernelNames {
		if name == "" {
			return errors.New("kernel names must not be empty")
		}
	}

	for _, spec := range cfg.Specializations {
		if spec.Global == "" {
			return errors.New("specialization global name must not be empty")
		}
	}

	return nil
}

// Target returns the configured target with the configured overrides applied.
func (cfg *Config) Target() backend.Target {
	target, ok := backend.LookupTarget(cfg.TargetName)
	if !ok {
		// Validate guarantees the target exists.
		panic("config: unknown target " + cfg.TargetName)
	}

	if cfg.TranslatorPath != "" {
		target.TranslatorPath = cfg.TranslatorPath
	}

	return target
}
