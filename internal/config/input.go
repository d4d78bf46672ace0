package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tyrone-yanaga/product-launcher/internal/domain"
	"gopkg.in/yaml.v3"
)

// RequestPreset is a saved submission: the sales data file plus the three pricing parameters.
type RequestPreset struct {
	File   string            `yaml:"file"`
	Inputs domain.FormInputs `yaml:",inline"`

	baseDir string
}

// InputParser handles parsing of request preset files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a request preset from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*RequestPreset, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	preset, err := ip.Parse(data)
	if err != nil {
		return nil, err
	}
	preset.baseDir = filepath.Dir(filename)
	return preset, nil
}

// Parse decodes and validates preset YAML
func (ip *InputParser) Parse(data []byte) (*RequestPreset, error) {
	var preset RequestPreset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePreset(&preset); err != nil {
		return nil, fmt.Errorf("request preset validation failed: %w", err)
	}
	return &preset, nil
}

// ValidatePreset checks that every field of the preset is present.
// Values are not interpreted; the optimizer owns numeric validation.
func (ip *InputParser) ValidatePreset(preset *RequestPreset) error {
	if strings.TrimSpace(preset.File) == "" {
		return fmt.Errorf("file is required")
	}
	if preset.Inputs.ProductionCost == "" {
		return fmt.Errorf("%s is required", domain.FieldProductionCost)
	}
	if preset.Inputs.ViableSalesPrice == "" {
		return fmt.Errorf("%s is required", domain.FieldViableSalesPrice)
	}
	if preset.Inputs.MaxSalesPrice == "" {
		return fmt.Errorf("%s is required", domain.FieldMaxSalesPrice)
	}
	return nil
}

// FilePath returns the preset's file path, resolved against the preset's own directory
func (p *RequestPreset) FilePath() string {
	if filepath.IsAbs(p.File) || p.baseDir == "" {
		return p.File
	}
	return filepath.Join(p.baseDir, p.File)
}

// LoadSelectedFile reads a sales data file from disk
func LoadSelectedFile(path string) (*domain.SelectedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sales data file %s: %w", path, err)
	}
	return domain.NewSelectedFile(path, data), nil
}
