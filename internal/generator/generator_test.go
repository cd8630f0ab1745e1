package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ThomasCrouzet/oobgen/internal/model"
	"github.com/ThomasCrouzet/oobgen/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset(inventoryRows ...model.Row) *model.Dataset {
	ds := model.NewDataset()
	ds.Add(&model.Table{
		Name:    "System",
		Columns: []string{"Parameter", "Value"},
		Rows: []model.Row{
			{"Parameter": "hostname", "Value": ""},
			{"Parameter": "serial_number", "Value": ""},
			{"Parameter": "domain_name", "Value": "example.com"},
		},
	})
	ds.Add(&model.Table{
		Name:    "NTP",
		Columns: []string{"NTP Server"},
		Rows:    []model.Row{{"NTP Server": "10.0.0.1"}},
	})
	ds.Add(&model.Table{
		Name:    "Management",
		Columns: []string{"Interface", "IP Address", "Prefix Length"},
		Rows:    []model.Row{{"Interface": "me0", "IP Address": "10.10.0.5", "Prefix Length": "24"}},
	})
	if len(inventoryRows) > 0 {
		ds.Add(&model.Table{
			Name:    "Inventory",
			Columns: []string{"Serial Number", "Host Name", "Mgmt IP"},
			Rows:    inventoryRows,
		})
	}
	return ds
}

func TestRunWritesOneFilePerDevice(t *testing.T) {
	// Scenario: three records, one with a blank serial. Two files are
	// written and the blank row is a deliberate no-op, not a failure.
	ds := testDataset(
		model.Row{"Serial Number": "FW0001", "Host Name": "sw1", "Mgmt IP": "10.10.0.11"},
		model.Row{"Serial Number": "", "Host Name": "ignored", "Mgmt IP": "10.10.0.12"},
		model.Row{"Serial Number": "FW0002", "Host Name": "sw2", "Mgmt IP": "10.10.0.13"},
	)

	dir := t.TempDir()
	g := &Generator{OutputDir: dir}

	sum, err := g.Run(ds)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Written)
	assert.Equal(t, 1, sum.Skipped)
	assert.Equal(t, 0, sum.Failed)
	assert.Equal(t, Success, sum.Outcome())

	data, err := os.ReadFile(filepath.Join(dir, "FW0001.cfg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Switch Serial Number: FW0001")
	assert.Contains(t, string(data), "set system host-name sw1")
	assert.Contains(t, string(data), "set interfaces me0 unit 0 family inet address 10.10.0.11/24")

	_, err = os.Stat(filepath.Join(dir, "FW0002.cfg"))
	assert.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRunSkipsPlaceholderRows(t *testing.T) {
	ds := testDataset(
		model.Row{"Serial Number": "Serial Number", "Host Name": "header", "Mgmt IP": "repeat"},
		model.Row{"Serial Number": "#", "Host Name": "comment", "Mgmt IP": "row"},
		model.Row{"Serial Number": "FW0001", "Host Name": "sw1", "Mgmt IP": "10.10.0.11"},
	)

	g := &Generator{OutputDir: t.TempDir()}
	sum, err := g.Run(ds)
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Written)
	assert.Equal(t, 2, sum.Skipped)
	assert.Equal(t, Success, sum.Outcome())
}

func TestRunFuzzyColumnDetection(t *testing.T) {
	ds := testDataset()
	ds.Add(&model.Table{
		Name:    "Inventory",
		Columns: []string{"Switch Serial", "Hostname", "Management Address"},
		Rows:    []model.Row{{"Switch Serial": "FW0009", "Hostname": "sw9", "Management Address": "10.10.0.99"}},
	})

	g := &Generator{OutputDir: t.TempDir()}
	sum, err := g.Run(ds)
	require.NoError(t, err)
	require.Equal(t, 1, sum.Written)
	assert.Equal(t, "FW0009", sum.Results[0].Serial)
}

func TestRunInventoryMissingColumns(t *testing.T) {
	ds := testDataset()
	ds.Add(&model.Table{
		Name:    "Inventory",
		Columns: []string{"Serial Number", "Location"},
		Rows:    []model.Row{{"Serial Number": "FW0001", "Location": "rack 4"}},
	})

	g := &Generator{OutputDir: t.TempDir()}
	_, err := g.Run(ds)
	require.Error(t, err)

	var structErr *render.StructuralError
	require.ErrorAs(t, err, &structErr)
	assert.Contains(t, err.Error(), "hostname")
	assert.Contains(t, err.Error(), "mgmt_ip")
	assert.Contains(t, err.Error(), "Location")
}

func TestRunSerialFilter(t *testing.T) {
	ds := testDataset(
		model.Row{"Serial Number": "FW0001", "Host Name": "sw1", "Mgmt IP": "10.10.0.11"},
		model.Row{"Serial Number": "FW0002", "Host Name": "sw2", "Mgmt IP": "10.10.0.12"},
	)

	dir := t.TempDir()
	g := &Generator{OutputDir: dir, Serial: "FW0002"}

	sum, err := g.Run(ds)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Written)

	_, err = os.Stat(filepath.Join(dir, "FW0002.cfg"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "FW0001.cfg"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunSerialFilterNotFound(t *testing.T) {
	ds := testDataset(
		model.Row{"Serial Number": "FW0001", "Host Name": "sw1", "Mgmt IP": "10.10.0.11"},
	)

	g := &Generator{OutputDir: t.TempDir(), Serial: "NOPE"}
	_, err := g.Run(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOPE")
}

func TestRunDryRun(t *testing.T) {
	ds := testDataset(
		model.Row{"Serial Number": "FW0001", "Host Name": "sw1", "Mgmt IP": "10.10.0.11"},
	)

	dir := t.TempDir()
	var buf bytes.Buffer
	g := &Generator{OutputDir: dir, DryRun: true, Stdout: &buf}

	sum, err := g.Run(ds)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Written)
	assert.Contains(t, buf.String(), "# Switch Serial Number: FW0001")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "dry run must not write files")
}

func TestRunIdempotent(t *testing.T) {
	ds := testDataset(
		model.Row{"Serial Number": "FW0001", "Host Name": "sw1", "Mgmt IP": "10.10.0.11"},
	)

	dir := t.TempDir()
	g := &Generator{OutputDir: dir}

	_, err := g.Run(ds)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(dir, "FW0001.cfg"))
	require.NoError(t, err)

	_, err = g.Run(ds)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, "FW0001.cfg"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunSanitizesSerialFilenames(t *testing.T) {
	ds := testDataset(
		model.Row{"Serial Number": "AB/CD", "Host Name": "sw1", "Mgmt IP": "10.10.0.11"},
	)

	dir := t.TempDir()
	g := &Generator{OutputDir: dir}

	sum, err := g.Run(ds)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Written)

	_, err = os.Stat(filepath.Join(dir, "AB_CD.cfg"))
	assert.NoError(t, err)
}

func TestRunRejectsUnusableSerial(t *testing.T) {
	ds := testDataset(
		model.Row{"Serial Number": "...", "Host Name": "sw1", "Mgmt IP": "10.10.0.11"},
	)

	g := &Generator{OutputDir: t.TempDir()}
	sum, err := g.Run(ds)
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, Failure, sum.Outcome())
	assert.Equal(t, []string{"..."}, sum.FailedSerials())
}

func TestRunLegacySingleDevice(t *testing.T) {
	ds := model.NewDataset()
	ds.Add(&model.Table{
		Name:    "System",
		Columns: []string{"Parameter", "Value"},
		Rows: []model.Row{
			{"Parameter": "serial_number", "Value": "FWLEG01"},
			{"Parameter": "hostname", "Value": "legacy-sw"},
		},
	})
	ds.Add(&model.Table{
		Name:    "Management",
		Columns: []string{"Interface", "IP Address", "Prefix Length"},
		Rows:    []model.Row{{"Interface": "me0", "IP Address": "10.10.0.7", "Prefix Length": "24"}},
	})

	dir := t.TempDir()
	g := &Generator{OutputDir: dir}

	sum, err := g.Run(ds)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Written)

	data, err := os.ReadFile(filepath.Join(dir, "FWLEG01.cfg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "set system host-name legacy-sw")
	assert.Contains(t, string(data), "# Management IP      : 10.10.0.7")
}

func TestRunLegacyFilenameFallback(t *testing.T) {
	t.Run("hostname fallback", func(t *testing.T) {
		ds := model.NewDataset()
		ds.Add(&model.Table{
			Name:    "System",
			Columns: []string{"Parameter", "Value"},
			Rows:    []model.Row{{"Parameter": "hostname", "Value": "only-host"}},
		})

		dir := t.TempDir()
		g := &Generator{OutputDir: dir}
		sum, err := g.Run(ds)
		require.NoError(t, err)
		require.Equal(t, 1, sum.Written)

		_, err = os.Stat(filepath.Join(dir, "only-host.cfg"))
		assert.NoError(t, err)
	})

	t.Run("switch fallback", func(t *testing.T) {
		ds := model.NewDataset()
		ds.Add(&model.Table{
			Name:    "NTP",
			Columns: []string{"NTP Server"},
			Rows:    []model.Row{{"NTP Server": "10.0.0.1"}},
		})

		dir := t.TempDir()
		g := &Generator{OutputDir: dir}
		sum, err := g.Run(ds)
		require.NoError(t, err)
		require.Equal(t, 1, sum.Written)

		_, err = os.Stat(filepath.Join(dir, "switch.cfg"))
		assert.NoError(t, err)
	})
}

func TestRunOneDeviceFailureDoesNotStopOthers(t *testing.T) {
	ds := testDataset(
		model.Row{"Serial Number": "...", "Host Name": "bad", "Mgmt IP": "10.10.0.12"},
		model.Row{"Serial Number": "FW0001", "Host Name": "sw1", "Mgmt IP": "10.10.0.11"},
	)

	dir := t.TempDir()
	g := &Generator{OutputDir: dir}

	sum, err := g.Run(ds)
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Written)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, Partial, sum.Outcome())

	_, err = os.Stat(filepath.Join(dir, "FW0001.cfg"))
	assert.NoError(t, err)
}
