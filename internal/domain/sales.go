package domain

import (
	"path/filepath"
	"strings"
)

// Form field names as they appear on the wire.
const (
	FieldFile             = "file"
	FieldProductionCost   = "productionCost"
	FieldViableSalesPrice = "viableSalesPrice"
	FieldMaxSalesPrice    = "maxSalesPrice"
)

// SupportedFileExtensions lists the sales data formats the optimizer accepts.
// They are offered as a hint only; file contents are never inspected locally.
var SupportedFileExtensions = []string{".csv", ".xlsx", ".xls"}

// FormInputs holds the three pricing parameters exactly as the user typed them.
// Values are forwarded verbatim and never parsed locally.
type FormInputs struct {
	ProductionCost   string `yaml:"productionCost" json:"productionCost"`
	ViableSalesPrice string `yaml:"viableSalesPrice" json:"viableSalesPrice"`
	MaxSalesPrice    string `yaml:"maxSalesPrice" json:"maxSalesPrice"`
}

// Set updates the field identified by its wire name and reports whether the name was known.
func (f *FormInputs) Set(field, value string) bool {
	switch field {
	case FieldProductionCost:
		f.ProductionCost = value
	case FieldViableSalesPrice:
		f.ViableSalesPrice = value
	case FieldMaxSalesPrice:
		f.MaxSalesPrice = value
	default:
		return false
	}
	return true
}

// SelectedFile is the single sales data file chosen by the user.
// Data is treated as read-only once the file has been selected.
type SelectedFile struct {
	Name string
	Data []byte
}

// NewSelectedFile wraps already-loaded file contents. Only the base name is kept.
func NewSelectedFile(name string, data []byte) *SelectedFile {
	return &SelectedFile{Name: filepath.Base(name), Data: data}
}

// HasSupportedExtension reports whether the file name ends in one of SupportedFileExtensions.
func (f *SelectedFile) HasSupportedExtension() bool {
	if f == nil {
		return false
	}
	ext := strings.ToLower(filepath.Ext(f.Name))
	for _, supported := range SupportedFileExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}
