package output

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/tyrone-yanaga/product-launcher/internal/display"
	"github.com/tyrone-yanaga/product-launcher/internal/domain"
)

func buildTestModel() *display.Model {
	return display.NewProjector(language.AmericanEnglish).Project(&domain.OptimizationResult{
		OptimalPrice:  19.995,
		TotalRevenue:  1234567,
		TotalProfit:   88888,
		AverageVolume: 120.6,
		MonthlyData: []domain.MonthlyRecord{
			{Month: "January", Revenue: 1000, Profit: 200, Volume: 50},
			{Month: "February", Revenue: 1100.5, Profit: 210.25, Volume: 55.1},
		},
	})
}

func TestFormatterFunc(t *testing.T) {
	var received *display.Model
	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(model *display.Model) ([]byte, error) {
			received = model
			return []byte("test output"), nil
		},
	}

	model := buildTestModel()
	out, err := formatter.Format(model)

	assert.NoError(t, err)
	assert.Same(t, model, received)
	assert.Equal(t, []byte("test output"), out)
	assert.Equal(t, "test-formatter", formatter.Name())
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"table", "json", "csv", "yaml"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, name)
		assert.Equal(t, name, f.Name())
	}
	assert.NotNil(t, GetFormatterByName(" JSON "))
	assert.Nil(t, GetFormatterByName("html"))
	assert.Equal(t, []string{"csv", "json", "table", "yaml"}, FormatNames())
}

func TestTableFormatter_Format(t *testing.T) {
	out, err := TableFormatter{}.Format(buildTestModel())
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "SALES PRICE OPTIMIZATION RESULTS")
	assert.Contains(t, text, "$20.00")
	assert.Contains(t, text, "$1,234,567")
	assert.Contains(t, text, "$88,888")
	assert.Contains(t, text, "121 units")
	assert.Less(t, strings.Index(text, "January"), strings.Index(text, "February"))
	assert.Contains(t, text, "1100.50")
}

func TestTableFormatter_EmptySeries(t *testing.T) {
	model := buildTestModel()
	model.Series = nil
	out, err := TableFormatter{}.Format(model)
	require.NoError(t, err)
	assert.Contains(t, string(out), "(no monthly data)")
}

func TestCSVFormatter_Format(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestModel())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Month", "Revenue", "Profit", "Volume"},
		{"January", "1000.00", "200.00", "50.00"},
		{"February", "1100.50", "210.25", "55.10"},
	}, records)
}

func TestJSONFormatter_Format(t *testing.T) {
	out, err := JSONFormatter{Pretty: true}.Format(buildTestModel())
	require.NoError(t, err)

	var decoded struct {
		OptimalPrice  string                 `json:"optimalPrice"`
		AverageVolume string                 `json:"averageVolume"`
		MonthlyData   []domain.MonthlyRecord `json:"monthlyData"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "20.00", decoded.OptimalPrice)
	assert.Equal(t, "121", decoded.AverageVolume)
	assert.Len(t, decoded.MonthlyData, 2)
	assert.Contains(t, string(out), "\n  ")

	compact, err := JSONFormatter{}.Format(buildTestModel())
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")
}

func TestYAMLFormatter_Format(t *testing.T) {
	out, err := YAMLFormatter{}.Format(buildTestModel())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "$1,234,567", decoded["totalRevenue"])
	assert.Len(t, decoded["monthlyData"], 2)
}

func TestWriteFormatted(t *testing.T) {
	chdir(t, t.TempDir())

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(model *display.Model) ([]byte, error) {
			return []byte("test output content"), nil
		},
	}

	filename, err := WriteFormatted(formatter, buildTestModel(), "txt")
	require.NoError(t, err)
	assert.Contains(t, filename, "sales_optimization_")
	assert.True(t, strings.HasSuffix(filename, ".txt"))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "test output content", string(content))
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
