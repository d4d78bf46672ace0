package output

import (
	"github.com/goccy/go-json"

	"github.com/tyrone-yanaga/product-launcher/internal/display"
)

// JSONFormatter renders the display model as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Name returns the format name
func (JSONFormatter) Name() string { return "json" }

// Format generates JSON output
func (jf JSONFormatter) Format(model *display.Model) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(model, "", "  ")
	}
	return json.Marshal(model)
}
