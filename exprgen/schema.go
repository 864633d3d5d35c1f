package exprgen

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// configSchema is the JSON schema for generator config files. Unknown
// keys are rejected so typos surface as errors instead of silently
// falling back to defaults.
var configSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"max_difficulty": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"maximum":     18,
			"description": "Highest accepted difficulty level",
		},
		"min_operands": map[string]any{
			"type":        "integer",
			"minimum":     2,
			"description": "Minimum operands per expression",
		},
		"max_operands": map[string]any{
			"type":        "integer",
			"minimum":     2,
			"description": "Maximum operands per expression",
		},
		"allow_decimal_result": map[string]any{
			"type":        "boolean",
			"description": "Whether results may be non-integer",
		},
		"allow_negative_result": map[string]any{
			"type":        "boolean",
			"description": "Whether results may be negative",
		},
		"decimal_places": map[string]any{
			"type":        "integer",
			"minimum":     0,
			"maximum":     10,
			"description": "Rounding precision for decimal results",
		},
	},
	"additionalProperties": false,
}

// configFile mirrors Config with JSON tags. Pointer fields distinguish
// "absent" from zero so a partial file overrides only what it names.
type configFile struct {
	MaxDifficulty       *int  `json:"max_difficulty"`
	MinOperands         *int  `json:"min_operands"`
	MaxOperands         *int  `json:"max_operands"`
	AllowDecimalResult  *bool `json:"allow_decimal_result"`
	AllowNegativeResult *bool `json:"allow_negative_result"`
	DecimalPlaces       *int  `json:"decimal_places"`
}

// LoadConfigFile reads a JSON config file, validates it against the
// config schema, and returns DefaultConfig overridden by the fields the
// file sets.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig validates and applies raw JSON config bytes over the
// defaults.
func ParseConfig(data []byte) (Config, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledConfigSchema()
	if err != nil {
		return Config{}, fmt.Errorf("compile config schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}

	var file configFile
	if err := json.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg := DefaultConfig()
	if file.MaxDifficulty != nil {
		cfg.MaxDifficulty = *file.MaxDifficulty
	}
	if file.MinOperands != nil {
		cfg.MinOperands = *file.MinOperands
	}
	if file.MaxOperands != nil {
		cfg.MaxOperands = *file.MaxOperands
	}
	if file.AllowDecimalResult != nil {
		cfg.AllowDecimalResult = *file.AllowDecimalResult
	}
	if file.AllowNegativeResult != nil {
		cfg.AllowNegativeResult = *file.AllowNegativeResult
	}
	if file.DecimalPlaces != nil {
		cfg.DecimalPlaces = *file.DecimalPlaces
	}

	if cfg.MaxOperands < cfg.MinOperands {
		return Config{}, fmt.Errorf("max_operands (%d) must be >= min_operands (%d)", cfg.MaxOperands, cfg.MinOperands)
	}

	return cfg, nil
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

// compiledConfigSchema compiles the schema on first use and caches the
// result; the definition is static. The jsonschema library expects a
// parsed JSON value (any), not raw bytes, so the definition round-trips
// through encoding/json.
func compiledConfigSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		defBytes, err := json.Marshal(configSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://exprgen-config.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile(schemaURL)
	})
	return schemaCompiled, schemaErr
}
