// Package submission gates and packages a single optimization request.
package submission

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/tyrone-yanaga/product-launcher/internal/domain"
)

// MissingFileMessage is shown when a submit is attempted without a sales data file.
const MissingFileMessage = "Please upload a sales data file"

// ValidationError is a precondition failure caught before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrMissingFile is returned by Validate when no file has been selected.
var ErrMissingFile = &ValidationError{Message: MissingFileMessage}

// Field is one text part of the multipart body.
type Field struct {
	Name  string
	Value string
}

// Payload is the complete outbound body for one submission attempt.
type Payload struct {
	File   domain.SelectedFile
	fields [3]Field
}

// Validate checks the only client-side precondition: a file must be selected.
// The numeric fields are not inspected; range and ordering checks belong to the server.
func Validate(file *domain.SelectedFile, _ domain.FormInputs) error {
	if file == nil {
		return ErrMissingFile
	}
	return nil
}

// Build assembles the payload from the current selection and inputs.
// It has no side effects; the file bytes are shared, never copied or modified.
func Build(file domain.SelectedFile, inputs domain.FormInputs) Payload {
	return Payload{
		File: file,
		fields: [3]Field{
			{Name: domain.FieldProductionCost, Value: inputs.ProductionCost},
			{Name: domain.FieldViableSalesPrice, Value: inputs.ViableSalesPrice},
			{Name: domain.FieldMaxSalesPrice, Value: inputs.MaxSalesPrice},
		},
	}
}

// Fields returns the text parts in wire order.
func (p Payload) Fields() []Field {
	out := make([]Field, len(p.fields))
	copy(out, p.fields[:])
	return out
}

// Value returns the text value for a field name.
func (p Payload) Value(name string) (string, bool) {
	for _, f := range p.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Encode writes the multipart body to w and returns its content type.
func (p Payload) Encode(w io.Writer) (string, error) {
	mw := multipart.NewWriter(w)

	part, err := mw.CreateFormFile(domain.FieldFile, p.File.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := part.Write(p.File.Data); err != nil {
		return "", fmt.Errorf("failed to write file part: %w", err)
	}

	for _, f := range p.fields {
		if err := mw.WriteField(f.Name, f.Value); err != nil {
			return "", fmt.Errorf("failed to write field %s: %w", f.Name, err)
		}
	}

	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}
	return mw.FormDataContentType(), nil
}

// Body encodes the payload fully into memory so that nothing is sent partially.
func (p Payload) Body() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	contentType, err := p.Encode(buf)
	if err != nil {
		return nil, "", err
	}
	return buf, contentType, nil
}
