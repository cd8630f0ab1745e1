package render

import (
	"strings"
	"testing"

	"github.com/ThomasCrouzet/oobgen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *model.Dataset {
	ds := model.NewDataset()
	ds.Add(tbl("System", []string{"Parameter", "Value"},
		model.Row{"Parameter": "hostname", "Value": ""},
		model.Row{"Parameter": "serial_number", "Value": ""},
		model.Row{"Parameter": "domain_name", "Value": "example.com"},
	))
	ds.Add(tbl("NTP", []string{"NTP Server", "Prefer"},
		model.Row{"NTP Server": "10.0.0.1", "Prefer": "YES"},
	))
	ds.Add(tbl("Management", []string{"Interface", "IP Address", "Prefix Length", "Gateway"},
		model.Row{"Interface": "me0", "IP Address": "10.10.0.5", "Prefix Length": "24", "Gateway": "10.10.0.1"},
	))
	return ds
}

func TestAssembleAppliesOverrides(t *testing.T) {
	ds := sampleDataset()
	dev := model.Device{Serial: "ABC123", Hostname: "sw1", MgmtIP: "10.10.0.11"}

	res, err := Assemble(ds, dev)
	require.NoError(t, err)

	assert.Contains(t, res.Text, "# Switch Serial Number: ABC123")
	assert.Contains(t, res.Text, "set system host-name sw1")
	assert.Contains(t, res.Text, "set system domain-name example.com")
	assert.Contains(t, res.Text, "set interfaces me0 unit 0 family inet address 10.10.0.11/24")
	assert.Equal(t, "ABC123", res.DiscoveredSerial)

	// The shared dataset must stay untouched
	assert.Equal(t, "", ds.Table("System").Rows[0]["Value"])
	assert.Equal(t, "10.10.0.5", ds.Table("Management").Rows[0]["IP Address"])
}

func TestAssembleDeterministic(t *testing.T) {
	ds := sampleDataset()
	dev := model.Device{Serial: "ABC123", Hostname: "sw1", MgmtIP: "10.10.0.11"}

	first, err := Assemble(ds, dev)
	require.NoError(t, err)
	second, err := Assemble(ds, dev)
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
}

func TestAssembleDifferentDevices(t *testing.T) {
	ds := sampleDataset()

	res1, err := Assemble(ds, model.Device{Serial: "AAA", Hostname: "sw1", MgmtIP: "10.10.0.11"})
	require.NoError(t, err)
	res2, err := Assemble(ds, model.Device{Serial: "BBB", Hostname: "sw2", MgmtIP: "10.10.0.12"})
	require.NoError(t, err)

	assert.NotEqual(t, res1.Text, res2.Text)

	// The difference is localized: shared commands identical in both
	assert.Contains(t, res1.Text, "set system ntp server 10.0.0.1 prefer")
	assert.Contains(t, res2.Text, "set system ntp server 10.0.0.1 prefer")
	assert.Contains(t, res1.Text, "set system domain-name example.com")
	assert.Contains(t, res2.Text, "set system domain-name example.com")
}

func TestAssembleSectionOrder(t *testing.T) {
	ds := sampleDataset()
	ds.Add(tbl("SNMP", []string{"Community/User", "Type"},
		model.Row{"Community/User": "netops", "Type": "community"},
	))

	res, err := Assemble(ds, model.Device{Serial: "S1", Hostname: "h1", MgmtIP: "1.2.3.4"})
	require.NoError(t, err)

	system := strings.Index(res.Text, "# System Configuration")
	ntp := strings.Index(res.Text, "# NTP Configuration")
	snmp := strings.Index(res.Text, "# SNMP Configuration")
	mgmt := strings.Index(res.Text, "# Management Interface Configuration")

	require.NotEqual(t, -1, system)
	require.NotEqual(t, -1, ntp)
	require.NotEqual(t, -1, snmp)
	require.NotEqual(t, -1, mgmt)

	assert.Less(t, system, ntp)
	assert.Less(t, ntp, snmp)
	assert.Less(t, snmp, mgmt, "Management must always come last")
}

func TestAssembleAbsentDomainsSkipped(t *testing.T) {
	ds := model.NewDataset()
	ds.Add(tbl("NTP", []string{"NTP Server"},
		model.Row{"NTP Server": "10.0.0.1"},
	))

	res, err := Assemble(ds, model.Device{Serial: "S1", Hostname: "h1", MgmtIP: "1.2.3.4"})
	require.NoError(t, err)

	assert.Contains(t, res.Text, "# NTP Configuration")
	assert.NotContains(t, res.Text, "# VLAN Configuration")
	assert.NotContains(t, res.Text, "# System Configuration")
}

func TestAssembleMissingColumnFails(t *testing.T) {
	ds := sampleDataset()
	ds.Add(tbl("Interfaces", []string{"Description", "Mode"},
		model.Row{"Description": "x", "Mode": "access"},
	))

	_, err := Assemble(ds, model.Device{Serial: "S1", Hostname: "h1", MgmtIP: "1.2.3.4"})
	require.Error(t, err)

	var colErr *ColumnError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, "Interfaces", colErr.Domain)
	assert.Equal(t, "Interface", colErr.Column)
}

func TestAssembleSectionsEndWithBlankLine(t *testing.T) {
	ds := sampleDataset()

	res, err := Assemble(ds, model.Device{Serial: "S1", Hostname: "h1", MgmtIP: "1.2.3.4"})
	require.NoError(t, err)

	lines := strings.Split(res.Text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "set system ntp server") {
			require.Less(t, i+1, len(lines))
			assert.Equal(t, "", lines[i+1], "NTP section must end with one blank line")
		}
	}
	// Document ends with the Management section's blank terminator
	assert.True(t, strings.HasSuffix(res.Text, "\n"))
}

func TestAssembleCollectsRecordErrors(t *testing.T) {
	ds := sampleDataset()
	ds.Add(tbl("SNMP", []string{"Community/User", "Type", "Authorization"},
		model.Row{"Community/User": "bad", "Type": "v3-user", "Authorization": "nocolonhere"},
	))

	res, err := Assemble(ds, model.Device{Serial: "S1", Hostname: "h1", MgmtIP: "1.2.3.4"})
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, "SNMP", res.Records[0].Table)
	assert.NotContains(t, res.Text, "nocolonhere")
}
