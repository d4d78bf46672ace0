package submission

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyrone-yanaga/product-launcher/internal/domain"
)

func TestValidate_MissingFile(t *testing.T) {
	err := Validate(nil, domain.FormInputs{ProductionCost: "1", ViableSalesPrice: "2", MaxSalesPrice: "3"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingFile))
	assert.Equal(t, "Please upload a sales data file", err.Error())

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestValidate_DoesNotCheckNumbers(t *testing.T) {
	file := domain.NewSelectedFile("sales.csv", nil)
	assert.NoError(t, Validate(file, domain.FormInputs{}))
	assert.NoError(t, Validate(file, domain.FormInputs{ProductionCost: "50", ViableSalesPrice: "10", MaxSalesPrice: "abc"}))
}

func TestBuild_ForwardsFieldsVerbatim(t *testing.T) {
	file := domain.NewSelectedFile("/tmp/uploads/history.xlsx", []byte{0x50, 0x4b, 0x03, 0x04})
	inputs := domain.FormInputs{ProductionCost: "10.000", ViableSalesPrice: " 15 ", MaxSalesPrice: "2.5e1"}

	p := Build(*file, inputs)

	assert.Equal(t, []Field{
		{Name: "productionCost", Value: "10.000"},
		{Name: "viableSalesPrice", Value: " 15 "},
		{Name: "maxSalesPrice", Value: "2.5e1"},
	}, p.Fields())
	assert.Equal(t, "history.xlsx", p.File.Name)
	assert.Equal(t, []byte{0x50, 0x4b, 0x03, 0x04}, p.File.Data)

	_, ok := p.Value("unknown")
	assert.False(t, ok)
}

func TestBuild_DoesNotMutateInputs(t *testing.T) {
	data := []byte("Product Name,January\n")
	file := domain.SelectedFile{Name: "sales.csv", Data: data}
	inputs := domain.FormInputs{ProductionCost: "1", ViableSalesPrice: "2", MaxSalesPrice: "3"}

	p := Build(file, inputs)
	fields := p.Fields()
	fields[0].Value = "changed"

	assert.Equal(t, "1", inputs.ProductionCost)
	assert.Equal(t, "Product Name,January\n", string(file.Data))
	v, _ := p.Value(domain.FieldProductionCost)
	assert.Equal(t, "1", v)
}

func TestBuild_Idempotent(t *testing.T) {
	file := domain.SelectedFile{Name: "sales.csv", Data: []byte("a,b\n1,2\n")}
	inputs := domain.FormInputs{ProductionCost: "1", ViableSalesPrice: "2", MaxSalesPrice: "3"}

	first := Build(file, inputs)
	second := Build(file, inputs)

	assert.Equal(t, first.Fields(), second.Fields())
	assert.Equal(t, first.File, second.File)
}

func TestPayload_EncodeContainsExactlyFourParts(t *testing.T) {
	file := domain.SelectedFile{Name: "sales.csv", Data: []byte("Product Name,January\nWidget,10\n")}
	p := Build(file, domain.FormInputs{ProductionCost: "10", ViableSalesPrice: "15.50", MaxSalesPrice: "20"})

	body, contentType, err := p.Body()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	parts := map[string]string{}
	var fileName string
	reader := multipart.NewReader(bytes.NewReader(body.Bytes()), params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		parts[part.FormName()] = string(data)
		if part.FormName() == domain.FieldFile {
			fileName = part.FileName()
		}
	}

	assert.Len(t, parts, 4)
	assert.Equal(t, "Product Name,January\nWidget,10\n", parts["file"])
	assert.Equal(t, "sales.csv", fileName)
	assert.Equal(t, "10", parts["productionCost"])
	assert.Equal(t, "15.50", parts["viableSalesPrice"])
	assert.Equal(t, "20", parts["maxSalesPrice"])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPayload_EncodeWriterFailure(t *testing.T) {
	p := Build(domain.SelectedFile{Name: "a.csv", Data: []byte("x")}, domain.FormInputs{})
	_, err := p.Encode(failingWriter{})
	assert.Error(t, err)
}
