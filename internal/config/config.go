package config

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/smartseq/internal/config/loader"
	"github.com/dshills/smartseq/internal/logging"
)

// Layer names, lowest priority first.
const (
	LayerDefaults = "defaults"
	LayerFile     = "file"
	LayerEnv      = "environment"
	LayerRuntime  = "runtime"
)

var layerOrder = []string{LayerDefaults, LayerFile, LayerEnv, LayerRuntime}

// Config merges smartseq settings from built-in defaults, an optional
// settings file, the environment and runtime overrides.
type Config struct {
	mu sync.RWMutex

	layers map[string]map[string]any
	merged map[string]any

	fs        loader.FileSystem
	file      string
	envPrefix string
	useEnv    bool
}

// Option configures a Config instance.
type Option func(*Config)

// WithFile sets the settings file. The format follows the extension.
func WithFile(path string) Option {
	return func(c *Config) {
		c.file = path
	}
}

// WithFileSystem sets the file system used to read the settings file.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fs
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithEnvironment enables or disables environment overrides.
func WithEnvironment(enable bool) Option {
	return func(c *Config) {
		c.useEnv = enable
	}
}

// New creates a Config holding only the defaults.
func New(opts ...Option) *Config {
	c := &Config{
		layers:    make(map[string]map[string]any),
		fs:        loader.DefaultFS(),
		envPrefix: loader.DefaultEnvPrefix,
		useEnv:    true,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.layers[LayerDefaults] = defaultConfig()
	return c
}

// Load reads the settings file and environment, then validates the
// merged result. An explicitly configured file that doesn't exist is an
// error.
func (c *Config) Load(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.file != "" {
		data, err := loader.ForPath(c.fs, c.file).Load()
		if err != nil {
			return err
		}
		if data == nil {
			return fmt.Errorf("%w: %s", ErrFileNotFound, c.file)
		}
		c.layers[LayerFile] = data
	}

	if c.useEnv {
		data, err := loader.NewEnvLoader(c.envPrefix).Load()
		if err != nil {
			return err
		}
		if len(data) > 0 {
			c.layers[LayerEnv] = data
		}
	}

	c.merged = nil
	return validate(c.mergedLocked())
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return getPath(c.mergedLocked(), path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	i, ok := toInt(v)
	if !ok {
		return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
	}
	return i, nil
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

// Set validates value and stores it in the runtime layer, which overrides
// every other layer.
func (c *Config) Set(path string, value any) error {
	if err := validateSetting(path, value); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	rt := c.layers[LayerRuntime]
	if rt == nil {
		rt = make(map[string]any)
		c.layers[LayerRuntime] = rt
	}
	if err := setPath(rt, path, value); err != nil {
		return err
	}
	c.merged = nil
	return nil
}

// Merged returns a copy of the fully merged configuration.
func (c *Config) Merged() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return loader.Clone(c.mergedLocked())
}

// Layers returns the names of the populated layers, lowest priority first.
func (c *Config) Layers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.layers))
	for _, name := range layerOrder {
		if _, ok := c.layers[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Table returns the table-format policy.
func (c *Config) Table() TableFormat {
	return TableFormat{
		LeadTrailPipes:       c.boolOr("table.leadTrailPipes", true),
		SpaceAroundPipe:      c.boolOr("table.spaceAroundPipe", true),
		AdjustColumnWidth:    c.boolOr("table.adjustColumnWidth", true),
		ApplyColumnAlignment: c.boolOr("table.applyColumnAlignment", true),
		FillMissingColumns:   c.boolOr("table.fillMissingColumns", true),
		TrimCells:            c.boolOr("table.trimCells", false),
		LeftAlignMarker:      LeftAlignMarker(c.intOr("table.leftAlignMarker", int(LeftAlignMarkerAdd))),
		Caption:              CaptionHandling(c.intOr("table.caption", int(CaptionAsIs))),
		CaptionSpaces:        CaptionSpaces(c.intOr("table.captionSpaces", int(CaptionSpacesAsIs))),
	}
}

// Document returns the document settings.
func (c *Config) Document() DocumentConfig {
	return DocumentConfig{
		TabSize:        c.intOr("document.tabSize", 4),
		ExpandTabs:     c.boolOr("document.expandTabs", false),
		MaxUndoEntries: c.intOr("document.maxUndoEntries", 1000),
		ReadOnly:       c.boolOr("document.readOnly", false),
	}
}

// Logging returns the logger settings.
func (c *Config) Logging() LoggingConfig {
	level, err := c.GetString("logging.level")
	if err != nil {
		level = "info"
	}
	return LoggingConfig{Level: level}
}

func (c *Config) boolOr(path string, def bool) bool {
	b, err := c.GetBool(path)
	if err != nil {
		return def
	}
	return b
}

func (c *Config) intOr(path string, def int) int {
	i, err := c.GetInt(path)
	if err != nil {
		return def
	}
	return i
}

// mergedLocked returns the cached merge, rebuilding it if needed.
// Callers hold c.mu for writing.
func (c *Config) mergedLocked() map[string]any {
	if c.merged != nil {
		return c.merged
	}
	merged := make(map[string]any)
	for _, name := range layerOrder {
		if data, ok := c.layers[name]; ok {
			merged = loader.DeepMerge(merged, loader.Clone(data))
		}
	}
	c.merged = merged
	return merged
}

// defaultConfig returns the built-in defaults as a nested map.
func defaultConfig() map[string]any {
	t := DefaultTableFormat()
	return map[string]any{
		"table": map[string]any{
			"leadTrailPipes":       t.LeadTrailPipes,
			"spaceAroundPipe":      t.SpaceAroundPipe,
			"adjustColumnWidth":    t.AdjustColumnWidth,
			"applyColumnAlignment": t.ApplyColumnAlignment,
			"fillMissingColumns":   t.FillMissingColumns,
			"trimCells":            t.TrimCells,
			"leftAlignMarker":      int(t.LeftAlignMarker),
			"caption":              int(t.Caption),
			"captionSpaces":        int(t.CaptionSpaces),
		},
		"document": map[string]any{
			"tabSize":        4,
			"expandTabs":     false,
			"maxUndoEntries": 1000,
			"readOnly":       false,
		},
		"logging": map[string]any{
			"level": "info",
		},
	}
}

type kind uint8

const (
	kindBool kind = iota
	kindInt
	kindString
)

// setting describes one known path. allowed, when set, checks the value.
type setting struct {
	kind    kind
	allowed func(v any) (ValidationErrorCode, string, bool)
}

func oneOf(values ...int) func(any) (ValidationErrorCode, string, bool) {
	return func(v any) (ValidationErrorCode, string, bool) {
		i, _ := toInt(v)
		for _, want := range values {
			if i == want {
				return 0, "", true
			}
		}
		return ErrCodeInvalidEnum, fmt.Sprintf("must be one of %v", values), false
	}
}

func atLeast(lo int) func(any) (ValidationErrorCode, string, bool) {
	return func(v any) (ValidationErrorCode, string, bool) {
		i, _ := toInt(v)
		if i < lo {
			return ErrCodeOutOfRange, fmt.Sprintf("must be at least %d", lo), false
		}
		return 0, "", true
	}
}

var settings = map[string]setting{
	"table.leadTrailPipes":       {kind: kindBool},
	"table.spaceAroundPipe":      {kind: kindBool},
	"table.adjustColumnWidth":    {kind: kindBool},
	"table.applyColumnAlignment": {kind: kindBool},
	"table.fillMissingColumns":   {kind: kindBool},
	"table.trimCells":            {kind: kindBool},
	"table.leftAlignMarker":      {kind: kindInt, allowed: oneOf(-1, 0, 1)},
	"table.caption":              {kind: kindInt, allowed: oneOf(0, 2, 3, 4)},
	"table.captionSpaces":        {kind: kindInt, allowed: oneOf(-1, 0, 1)},
	"document.tabSize":           {kind: kindInt, allowed: atLeast(1)},
	"document.expandTabs":        {kind: kindBool},
	"document.maxUndoEntries":    {kind: kindInt, allowed: atLeast(0)},
	"document.readOnly":          {kind: kindBool},
	"logging.level": {kind: kindString, allowed: func(v any) (ValidationErrorCode, string, bool) {
		if _, ok := logging.ParseLevel(v.(string)); !ok {
			return ErrCodeInvalidEnum, "must be one of debug, info, warn, error", false
		}
		return 0, "", true
	}},
}

// validate checks every leaf of merged against the known settings and
// reports the first failure in path order.
func validate(merged map[string]any) error {
	leaves := make(map[string]any)
	flatten("", merged, leaves)

	paths := make([]string, 0, len(leaves))
	for p := range leaves {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		if err := validateSetting(p, leaves[p]); err != nil {
			return err
		}
	}
	return nil
}

func validateSetting(path string, value any) error {
	s, ok := settings[path]
	if !ok {
		return &ValidationError{Path: path, Message: "unknown setting", Value: value, Code: ErrCodeUnknownSetting}
	}

	var typeOK bool
	switch s.kind {
	case kindBool:
		_, typeOK = value.(bool)
	case kindInt:
		_, typeOK = toInt(value)
	case kindString:
		_, typeOK = value.(string)
	}
	if !typeOK {
		return &ValidationError{Path: path, Message: "wrong type " + typeName(value), Value: value, Code: ErrCodeTypeMismatch}
	}

	if s.allowed != nil {
		if code, msg, ok := s.allowed(value); !ok {
			return &ValidationError{Path: path, Message: msg, Value: value, Code: code}
		}
	}
	return nil
}

func flatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flatten(path, sub, out)
			continue
		}
		out[path] = v
	}
}

// toInt accepts the integer shapes the loaders produce. Floats must be
// whole numbers.
func toInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		if val != float64(int(val)) {
			return 0, false
		}
		return int(val), true
	default:
		return 0, false
	}
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, false
	}

	current := any(m)
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = cm[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// setPath sets a value in a nested map using a dot-separated path.
func setPath(m map[string]any, path string, value any) error {
	parts := splitPath(path)
	if len(parts) == 0 {
		return ErrInvalidPath
	}

	current := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part]
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return ErrInvalidPath
		}
		current = nextMap
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// splitPath splits a dot-separated path into its non-empty parts.
func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '.' })
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return "unknown"
	}
}
