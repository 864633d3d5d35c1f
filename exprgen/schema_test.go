package exprgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfigOverrides(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{
		"max_difficulty": 3,
		"allow_decimal_result": true,
		"decimal_places": 1
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxDifficulty != 3 {
		t.Errorf("MaxDifficulty = %d, want 3", cfg.MaxDifficulty)
	}
	if !cfg.AllowDecimalResult {
		t.Error("AllowDecimalResult should be true")
	}
	if cfg.DecimalPlaces != 1 {
		t.Errorf("DecimalPlaces = %d, want 1", cfg.DecimalPlaces)
	}
	// Untouched fields keep their defaults.
	if cfg.MinOperands != 2 || cfg.MaxOperands != 5 {
		t.Errorf("operand bounds = [%d, %d], want [2, 5]", cfg.MinOperands, cfg.MaxOperands)
	}
	if cfg.AllowNegativeResult {
		t.Error("AllowNegativeResult should keep its default false")
	}
}

func TestParseConfigRejectsUnknownKeys(t *testing.T) {
	_, err := ParseConfig([]byte(`{"max_dificulty": 3}`))
	if err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
	if !strings.Contains(err.Error(), "validation") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseConfigRejectsBadTypes(t *testing.T) {
	cases := []string{
		`{"max_difficulty": "four"}`,
		`{"max_difficulty": 19}`,
		`{"min_operands": 1}`,
		`{"decimal_places": -1}`,
		`not json`,
	}
	for _, c := range cases {
		if _, err := ParseConfig([]byte(c)); err == nil {
			t.Errorf("ParseConfig(%q) should fail", c)
		}
	}
}

func TestParseConfigRejectsInvertedOperandBounds(t *testing.T) {
	_, err := ParseConfig([]byte(`{"min_operands": 4, "max_operands": 2}`))
	if err == nil {
		t.Fatal("expected inverted operand bounds to be rejected")
	}
}

func TestCompiledConfigSchemaIsCached(t *testing.T) {
	first, err := compiledConfigSchema()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := compiledConfigSchema()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("expected repeated calls to return the same compiled schema")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"max_operands": 3}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxOperands != 3 {
		t.Errorf("MaxOperands = %d, want 3", cfg.MaxOperands)
	}

	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
