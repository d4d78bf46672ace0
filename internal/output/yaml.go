package output

import (
	"gopkg.in/yaml.v3"

	"github.com/tyrone-yanaga/product-launcher/internal/display"
)

// YAMLFormatter renders the display model as YAML
type YAMLFormatter struct{}

// Name returns the format name
func (YAMLFormatter) Name() string { return "yaml" }

// Format generates YAML output
func (YAMLFormatter) Format(model *display.Model) ([]byte, error) {
	return yaml.Marshal(model)
}
