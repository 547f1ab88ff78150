package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/straydragon/sddcheck/internal/templates"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the repository root when no
// explicit path is given.
const DefaultFile = ".sddcheck.yaml"

// Config holds the checker configuration.
type Config struct {
	// RepoRoot is the directory template roots are resolved against.
	RepoRoot string `yaml:"-"`

	// PrimaryRoot holds one directory per locale and must exist.
	PrimaryRoot string `yaml:"primary_root"`

	// LegacyRoot is checked only when it exists. Empty disables it.
	LegacyRoot string `yaml:"legacy_root"`

	// BaselineLocale is preferred as baseline; otherwise the first locale wins.
	BaselineLocale string `yaml:"baseline_locale"`

	SkillDir               string `yaml:"skill_dir"`
	SkillPrefix            string `yaml:"skill_prefix"`
	MaxSkillNameLen        int    `yaml:"max_skill_name_length"`
	MaxSkillDescriptionLen int    `yaml:"max_skill_description_length"`
}

// Default returns the configuration for an llman checkout at repoRoot.
func Default(repoRoot string) *Config {
	rules := templates.DefaultSkillRules()
	return &Config{
		RepoRoot:               repoRoot,
		PrimaryRoot:            "templates/sdd",
		LegacyRoot:             "templates/sdd-legacy",
		BaselineLocale:         "en",
		SkillDir:               rules.Dir,
		SkillPrefix:            rules.Prefix,
		MaxSkillNameLen:        rules.MaxNameLen,
		MaxSkillDescriptionLen: rules.MaxDescriptionLen,
	}
}

// Load returns the configuration for repoRoot. When path is empty the default
// config file in repoRoot is read if present; an explicit path must exist.
// Relative paths are resolved against repoRoot.
func Load(repoRoot, path string) (*Config, error) {
	if repoRoot == "" {
		repoRoot = "."
	}
	abs, err := filepath.Abs(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repo root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("repo root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("repo root %s is not a directory", abs)
	}

	cfg := Default(abs)

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(abs, path)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate rejects configurations the checker cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.PrimaryRoot) == "" {
		return fmt.Errorf("primary_root must not be empty")
	}
	if c.SkillDir == "" {
		return fmt.Errorf("skill_dir must not be empty")
	}
	if strings.Contains(c.SkillDir, "/") || strings.Contains(c.SkillPrefix, "/") {
		return fmt.Errorf("skill_dir and skill_prefix must not contain '/'")
	}
	if c.MaxSkillNameLen <= 0 {
		return fmt.Errorf("max_skill_name_length must be positive, got %d", c.MaxSkillNameLen)
	}
	if c.MaxSkillDescriptionLen <= 0 {
		return fmt.Errorf("max_skill_description_length must be positive, got %d", c.MaxSkillDescriptionLen)
	}
	return nil
}

// Checker returns a checker configured from c.
func (c *Config) Checker() *templates.Checker {
	return &templates.Checker{
		RepoRoot: c.RepoRoot,
		Baseline: c.BaselineLocale,
		Skills: templates.SkillRules{
			Dir:               c.SkillDir,
			Prefix:            c.SkillPrefix,
			MaxNameLen:        c.MaxSkillNameLen,
			MaxDescriptionLen: c.MaxSkillDescriptionLen,
		},
	}
}

// Roots returns the on-disk template roots that exist, primary first.
func (c *Config) Roots() []string {
	chk := c.Checker()
	var out []string
	for _, r := range []string{c.PrimaryRoot, c.LegacyRoot} {
		if r != "" && chk.RootExists(r) {
			out = append(out, chk.Resolve(r))
		}
	}
	return out
}
