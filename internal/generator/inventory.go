package generator

import (
	"strings"

	"github.com/ThomasCrouzet/oobgen/internal/model"
	"github.com/ThomasCrouzet/oobgen/internal/render"
)

// devicesFrom extracts the device records to render. With an Inventory
// table present, one record per row; otherwise the dataset itself
// describes a single device (legacy mode).
func devicesFrom(ds *model.Dataset) (devices []model.Device, legacy bool, err error) {
	if t := ds.Table("Inventory"); t != nil {
		devices, err = inventoryDevices(t)
		return devices, false, err
	}
	return []model.Device{legacyDevice(ds)}, true, nil
}

// inventoryColumns locates the serial, hostname and management-IP
// columns by fuzzy, case-insensitive substring match, so templates
// with headers like "Serial Number" or "Mgmt IP" all work.
func inventoryColumns(t *model.Table) (map[string]string, []string) {
	cols := make(map[string]string)
	for _, col := range t.Columns {
		lc := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(col)), " ", "_")
		switch {
		case strings.Contains(lc, "serial"):
			cols["serial"] = col
		case strings.Contains(lc, "host"):
			cols["hostname"] = col
		case strings.Contains(lc, "model"):
			cols["model"] = col
		case strings.Contains(lc, "ip"), strings.Contains(lc, "mgmt"), strings.Contains(lc, "management"):
			cols["mgmt_ip"] = col
		}
	}

	var missing []string
	for _, key := range []string{"serial", "hostname", "mgmt_ip"} {
		if _, ok := cols[key]; !ok {
			missing = append(missing, key)
		}
	}
	return cols, missing
}

// CheckInventory verifies that the three required inventory columns
// can be located. Used by 'oobgen validate' before any generation.
func CheckInventory(t *model.Table) error {
	_, missing := inventoryColumns(t)
	if len(missing) > 0 {
		return &render.StructuralError{
			Table: "Inventory",
			Field: "columns for " + strings.Join(missing, ", "),
			Found: t.Columns,
		}
	}
	return nil
}

func inventoryDevices(t *model.Table) ([]model.Device, error) {
	cols, missing := inventoryColumns(t)
	if len(missing) > 0 {
		return nil, &render.StructuralError{
			Table: "Inventory",
			Field: "columns for " + strings.Join(missing, ", "),
			Found: t.Columns,
		}
	}

	devices := make([]model.Device, 0, len(t.Rows))
	for _, row := range t.Rows {
		dev := model.Device{
			Serial:   model.NormalizeCell(row.Get(cols["serial"])),
			Hostname: model.NormalizeCell(row.Get(cols["hostname"])),
			MgmtIP:   model.NormalizeCell(row.Get(cols["mgmt_ip"])),
		}
		if c, ok := cols["model"]; ok {
			dev.Model = model.NormalizeCell(row.Get(c))
		}
		if dev.Model == "" {
			dev.Model = model.DefaultModel
		}
		devices = append(devices, dev)
	}
	return devices, nil
}

// legacyDevice reads the single implicit device out of the dataset's
// own System and Management tables.
func legacyDevice(ds *model.Dataset) model.Device {
	dev := model.Device{MgmtIP: "0.0.0.0", Model: model.DefaultModel}

	if sys := ds.Table("System"); sys != nil {
		for _, row := range sys.Rows {
			value := row.Get("Value")
			if model.IsBlank(value) {
				continue
			}
			switch strings.TrimSpace(row.Get("Parameter")) {
			case "serial_number":
				dev.Serial = model.NormalizeCell(value)
			case "hostname":
				dev.Hostname = model.NormalizeCell(value)
			}
		}
	}

	if mgmt := ds.Table("Management"); mgmt != nil && len(mgmt.Rows) > 0 {
		if ip := mgmt.Rows[0].Get("IP Address"); !model.IsBlank(ip) {
			dev.MgmtIP = model.NormalizeCell(ip)
		}
	}

	return dev
}
