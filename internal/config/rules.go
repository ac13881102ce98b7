package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/fantasy-scoring/internal/domain/scoring"
)

var rulesValidator = validator.New()

// LoadScoringRules reads a YAML rule file and overlays it on the default
// rule table. An empty path returns the defaults. Unknown keys are rejected.
func LoadScoringRules(path string) (scoring.Rules, error) {
	rules := scoring.DefaultRules()
	if path == "" {
		return rules, ValidateScoringRules(rules)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return scoring.Rules{}, fmt.Errorf("read scoring rules %s: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&rules); err != nil && !errors.Is(err, io.EOF) {
		return scoring.Rules{}, fmt.Errorf("decode scoring rules %s: %w", path, err)
	}

	if err := ValidateScoringRules(rules); err != nil {
		return scoring.Rules{}, fmt.Errorf("scoring rules %s: %w", path, err)
	}
	return rules, nil
}

func ValidateScoringRules(rules scoring.Rules) error {
	if err := rulesValidator.Struct(rules); err != nil {
		return fmt.Errorf("validate scoring rules: %w", err)
	}
	return nil
}
