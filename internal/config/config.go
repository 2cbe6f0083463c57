// Package config loads gdtoolkit settings: the project file gdtoolkit.toml
// and the linter file gdlintrc, which overrides the linter section.
package config

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	ProjectFile = "gdtoolkit.toml"
	LintFile    = "gdlintrc"
)

type Config struct {
	Format Format `toml:"format"`
	Lint   Lint   `toml:"lint"`

	// Files lists the configuration files that were applied, in order.
	Files []string `toml:"-"`
}

type Format struct {
	LineLength  int  `toml:"line_length"`
	UseSpaces   bool `toml:"use_spaces"`
	IndentWidth int  `toml:"indent_width"`
}

// Lint holds the linter settings under gdlint's key names.
type Lint struct {
	Disable               []string `toml:"disable" yaml:"disable"`
	ClassDefinitionsOrder []string `toml:"class_definitions_order" yaml:"class-definitions-order"`
	MaxLineLength         int      `toml:"max_line_length" yaml:"max-line-length"`
	MaxFileLines          int      `toml:"max_file_lines" yaml:"max-file-lines"`
	TabCharacters         int      `toml:"tab_characters" yaml:"tab-characters"`

	ClassName            string `toml:"class_name" yaml:"class-name"`
	SubClassName         string `toml:"sub_class_name" yaml:"sub-class-name"`
	SignalName           string `toml:"signal_name" yaml:"signal-name"`
	FunctionName         string `toml:"function_name" yaml:"function-name"`
	FunctionArgumentName string `toml:"function_argument_name" yaml:"function-argument-name"`
	FunctionVariableName string `toml:"function_variable_name" yaml:"function-variable-name"`
	LoopVariableName     string `toml:"loop_variable_name" yaml:"loop-variable-name"`
	ClassVariableName    string `toml:"class_variable_name" yaml:"class-variable-name"`
	ConstantName         string `toml:"constant_name" yaml:"constant-name"`
	EnumName             string `toml:"enum_name" yaml:"enum-name"`
	EnumElementName      string `toml:"enum_element_name" yaml:"enum-element-name"`
}

// Sections of a class body, as used by class-definitions-order.
var DefaultClassDefinitionsOrder = []string{
	"tools", "classnames", "extends", "signals", "enums", "consts", "exports",
	"pubvars", "prvvars", "onreadypubvars", "onreadyprvvars", "others",
}

const (
	pascalCase = `([A-Z][a-z0-9]*)+`
	snakeCase  = `[a-z][a-z0-9]*(_[a-z0-9]+)*`
	upperCase  = `[A-Z][A-Z0-9]*(_[A-Z0-9]+)*`
)

// Default returns the complete default configuration.
func Default() Config {
	return Config{
		Format: Format{LineLength: 100, IndentWidth: 4},
		Lint:   DefaultLint(),
	}
}

func DefaultLint() Lint {
	return Lint{
		Disable:               []string{},
		ClassDefinitionsOrder: append([]string(nil), DefaultClassDefinitionsOrder...),
		MaxLineLength:         100,
		MaxFileLines:          1000,
		TabCharacters:         1,

		ClassName:            pascalCase,
		SubClassName:         "_?" + pascalCase,
		SignalName:           snakeCase,
		FunctionName:         "(_on_" + pascalCase + "(_[a-z0-9]+)*|_?" + snakeCase + ")",
		FunctionArgumentName: "_?" + snakeCase,
		FunctionVariableName: snakeCase,
		LoopVariableName:     "_?" + snakeCase,
		ClassVariableName:    "_?" + snakeCase,
		ConstantName:         upperCase,
		EnumName:             pascalCase,
		EnumElementName:      upperCase,
	}
}

// Disabled reports whether the named check is switched off.
func (l Lint) Disabled(check string) bool {
	for _, d := range l.Disable {
		if d == check {
			return true
		}
	}
	return false
}

// Find walks up from startDir looking for name.
func Find(startDir, name string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load builds the effective configuration for startDir: defaults, then the
// nearest gdtoolkit.toml, then the nearest gdlintrc.
func Load(startDir string) (Config, error) {
	cfg := Default()
	if path, ok, err := Find(startDir, ProjectFile); err != nil {
		return cfg, err
	} else if ok {
		if err := cfg.applyTOML(path); err != nil {
			return cfg, err
		}
	}
	if path, ok, err := Find(startDir, LintFile); err != nil {
		return cfg, err
	} else if ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := cfg.Lint.ApplyYAML(data); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
		cfg.Files = append(cfg.Files, path)
	}
	return cfg, nil
}

func (c *Config) applyTOML(path string) error {
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if meta.IsDefined("format", "line_length") && c.Format.LineLength <= 0 {
		return fmt.Errorf("%s: [format].line_length must be positive", path)
	}
	if meta.IsDefined("format", "indent_width") && c.Format.IndentWidth <= 0 {
		return fmt.Errorf("%s: [format].indent_width must be positive", path)
	}
	if err := c.Lint.validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	c.Files = append(c.Files, path)
	return nil
}

// ApplyYAML overrides the keys present in a gdlintrc document.
func (l *Lint) ApplyYAML(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(l); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return l.validate()
}

func (l Lint) validate() error {
	if l.MaxLineLength <= 0 {
		return errors.New("max-line-length must be positive")
	}
	if l.MaxFileLines <= 0 {
		return errors.New("max-file-lines must be positive")
	}
	known := make(map[string]bool, len(DefaultClassDefinitionsOrder))
	for _, s := range DefaultClassDefinitionsOrder {
		known[s] = true
	}
	for _, s := range l.ClassDefinitionsOrder {
		if !known[s] {
			return fmt.Errorf("unknown class-definitions-order section %q", s)
		}
	}
	for key, pattern := range l.namePatterns() {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("%s: invalid pattern: %w", key, err)
		}
	}
	return nil
}

func (l Lint) namePatterns() map[string]string {
	return map[string]string{
		"class-name":             l.ClassName,
		"sub-class-name":         l.SubClassName,
		"signal-name":            l.SignalName,
		"function-name":          l.FunctionName,
		"function-argument-name": l.FunctionArgumentName,
		"function-variable-name": l.FunctionVariableName,
		"loop-variable-name":     l.LoopVariableName,
		"class-variable-name":    l.ClassVariableName,
		"constant-name":          l.ConstantName,
		"enum-name":              l.EnumName,
		"enum-element-name":      l.EnumElementName,
	}
}

// DumpYAML writes l as a gdlintrc document.
func (l Lint) DumpYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

// Fingerprint identifies the settings that influence lint results.
func (l Lint) Fingerprint() string {
	var buf bytes.Buffer
	if err := l.DumpYAML(&buf); err != nil {
		return ""
	}
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}
