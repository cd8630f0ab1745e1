package render

import (
	"strings"

	"github.com/ThomasCrouzet/oobgen/internal/model"
)

// domainOrder is the fixed sequence of sections between System (always
// first) and Management (always last).
var domainOrder = []*Domain{
	NTPDomain,
	SyslogDomain,
	TACACSDomain,
	VLANDomain,
	IRBDomain,
	InterfaceDomain,
	HardeningDomain,
	SNMPDomain,
}

// AllDomains lists every domain in assembly order.
func AllDomains() []*Domain {
	out := []*Domain{SystemDomain}
	out = append(out, domainOrder...)
	return append(out, ManagementDomain)
}

// Result is the rendered configuration for one device.
type Result struct {
	Text             string
	Records          []RecordError // malformed rows dropped during rendering
	DiscoveredSerial string        // serial found in the System table
}

// Assemble renders the full configuration document for one device:
// a fixed header, then every domain whose table is present, in the
// declared order. The shared dataset is never mutated; per-device
// overrides are applied to a copy of the System table.
//
// Identical inputs produce byte-identical output.
func Assemble(ds *model.Dataset, dev model.Device) (*Result, error) {
	ctx := &Context{Device: dev, MgmtIP: dev.MgmtIP}
	lines := header(dev)

	if t := ds.Table(SystemDomain.Name); t != nil {
		out, err := SystemDomain.Map(applySystemOverrides(t, dev), ctx)
		if err != nil {
			return nil, err
		}
		lines = append(lines, out...)
	}

	for _, d := range domainOrder {
		t := ds.Table(d.Name)
		if t == nil {
			continue
		}
		out, err := d.Map(t, ctx)
		if err != nil {
			return nil, err
		}
		lines = append(lines, out...)
	}

	if t := ds.Table(ManagementDomain.Name); t != nil {
		out, err := ManagementDomain.Map(t, ctx)
		if err != nil {
			return nil, err
		}
		lines = append(lines, out...)
	}

	return &Result{
		Text:             strings.Join(lines, "\n"),
		Records:          ctx.Records(),
		DiscoveredSerial: ctx.DiscoveredSerial,
	}, nil
}

// header returns the fixed comment block. It carries no timestamp so
// that re-running with unchanged inputs rewrites identical files.
func header(dev model.Device) []string {
	return []string{
		"# Juniper EX Switch Configuration",
		"# Generated by oobgen",
		"# Switch Serial Number: " + dev.Serial,
		"# Hostname           : " + dev.Hostname,
		"# Management IP      : " + dev.MgmtIP,
		strings.Repeat("#", 60),
		"",
	}
}

// applySystemOverrides rewrites the hostname and serial_number rows of
// a copied System table with the device's own values, so the System
// mapper renders the overridden identity through its normal path.
func applySystemOverrides(t *model.Table, dev model.Device) *model.Table {
	copied := t.Clone()
	for _, row := range copied.Rows {
		switch strings.TrimSpace(row.Get("Parameter")) {
		case "hostname":
			row["Value"] = dev.Hostname
		case "serial_number":
			row["Value"] = dev.Serial
		}
	}
	return copied
}
