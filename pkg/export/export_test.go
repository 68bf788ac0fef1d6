package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	data := Dataset{
		Headers: []string{"Category", "Amount"},
		Rows: []map[string]string{
			{"Category": "Tuition Fee", "Amount": "15000.00"},
			{"Category": "Sports Fee", "Amount": "1000.00"},
		},
	}
	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Category,Amount", lines[0])
	assert.Equal(t, "Tuition Fee,15000.00", lines[1])
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	data := Dataset{
		Headers: []string{"Category", "Amount"},
		Rows:    []map[string]string{{"Category": "Tuition Fee", "Amount": "15000.00"}},
	}
	out, err := NewPDFExporter().Render(data, "Fee Statement")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestPDFExporterRenderDocument(t *testing.T) {
	out, err := NewPDFExporter().RenderDocument("Payment Receipt", []Field{
		{Label: "Receipt No", Value: "REC-001"},
		{Label: "Amount", Value: "18000.00"},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))

	_, err = NewPDFExporter().RenderDocument("Empty", nil)
	assert.Error(t, err)
}
