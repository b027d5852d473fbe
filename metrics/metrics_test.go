package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/reusee/soup/assay"
	"github.com/reusee/soup/census"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New()
	m.ObserveCensus(3000, census.Stats{Unique: 900, MaxCount: 12}, 40, 5000)
	assert.Equal(t, 3000.0, testutil.ToFloat64(m.Epoch))
	assert.Equal(t, 900.0, testutil.ToFloat64(m.Unique))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.MaxCount))
	assert.Equal(t, 40.0, testutil.ToFloat64(m.Novel))
	assert.Equal(t, 5000.0, testutil.ToFloat64(m.Seen))

	m.ObserveAssay(assay.Rates{TemplateFirst: 0.25, TemplateSecond: 0.5})
	m.ObserveAssay(assay.Rates{TemplateFirst: 0.75, TemplateSecond: 0})
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Replicators))
	assert.Equal(t, 0.75, testutil.ToFloat64(m.TemplateFirst))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.TemplateSecond))
}

func TestWriteFile(t *testing.T) {
	m := New()
	m.ObserveCensus(1, census.Stats{Unique: 2, MaxCount: 3}, 0, 2)
	path := filepath.Join(t.TempDir(), "soup.prom")
	require.NoError(t, m.WriteFile(path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "soup_unique_genomes 2"), string(content))
	assert.True(t, strings.Contains(string(content), "soup_replicators_total 0"), string(content))
}
