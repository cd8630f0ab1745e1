package render

import (
	"fmt"
	"strings"

	"github.com/ThomasCrouzet/oobgen/internal/model"
)

// systemParams maps System sheet parameter names to their set-command
// templates. serial_number is absent on purpose: it feeds the header
// and filename, not the configuration body. Unknown parameters are
// ignored so new sheet rows never break older binaries.
var systemParams = map[string]string{
	"hostname":      "set system host-name %s",
	"domain_name":   "set system domain-name %s",
	"root_password": `set system root-authentication encrypted-password "%s"`,
	"time_zone":     "set system time-zone %s",
	"login_message": `set system login message "%s"`,
}

// SystemDomain renders the System table (Parameter/Value rows).
var SystemDomain = &Domain{
	Name:     "System",
	Title:    "System Configuration",
	Required: []string{"Parameter", "Value"},
	MapRow: func(row model.Row, ctx *Context) ([]string, string, error) {
		param := strings.TrimSpace(row.Get("Parameter"))
		value := row.Get("Value")
		if model.IsBlank(value) {
			return skip()
		}
		if param == "serial_number" {
			ctx.DiscoveredSerial = strings.TrimSpace(value)
			return skip()
		}
		if tmpl, known := systemParams[param]; known {
			return ok(fmt.Sprintf(tmpl, value))
		}
		if strings.HasPrefix(param, "name_server") {
			return ok("set system name-server " + value)
		}
		return skip()
	},
}

// NTPDomain renders the NTP table.
var NTPDomain = &Domain{
	Name:     "NTP",
	Title:    "NTP Configuration",
	Required: []string{"NTP Server"},
	MapRow: func(row model.Row, ctx *Context) ([]string, string, error) {
		server := row.Get("NTP Server")
		if model.IsBlank(server) {
			return skip()
		}
		cmd := "set system ntp server " + server
		if model.IsYes(row.Get("Prefer")) {
			cmd += " prefer"
		}
		return ok(cmd)
	},
}

// SyslogDomain renders the Syslog table.
var SyslogDomain = &Domain{
	Name:     "Syslog",
	Title:    "Syslog Configuration",
	Required: []string{"Syslog Server"},
	MapRow: func(row model.Row, ctx *Context) ([]string, string, error) {
		server := row.Get("Syslog Server")
		if model.IsBlank(server) {
			return skip()
		}
		facility := row.Get("Facility")
		if model.IsBlank(facility) {
			facility = "any"
		}
		level := row.Get("Level")
		if model.IsBlank(level) {
			level = "info"
		}
		return ok(fmt.Sprintf("set system syslog host %s %s %s", server, facility, level))
	},
}

// TACACSDomain renders the TACACS table.
var TACACSDomain = &Domain{
	Name:     "TACACS",
	Title:    "TACACS+ Configuration",
	Required: []string{"TACACS Server", "Secret"},
	MapRow: func(row model.Row, ctx *Context) ([]string, string, error) {
		server := row.Get("TACACS Server")
		if model.IsBlank(server) {
			return skip()
		}
		lines := []string{
			fmt.Sprintf(`set system tacplus-server %s secret "%s"`, server, row.Get("Secret")),
		}
		port, present := row.Lookup("Port")
		if !present {
			port = "49"
		}
		if !model.IsBlank(port) {
			lines = append(lines, fmt.Sprintf("set system tacplus-server %s port %s", server, port))
		}
		return ok(lines...)
	},
}

// VLANDomain renders the VLANs table.
var VLANDomain = &Domain{
	Name:     "VLANs",
	Title:    "VLAN Configuration",
	Required: []string{"VLAN ID", "VLAN Name"},
	MapRow: func(row model.Row, ctx *Context) ([]string, string, error) {
		id := row.Get("VLAN ID")
		if model.IsBlank(id) {
			return skip()
		}
		name := row.Get("VLAN Name")
		lines := []string{fmt.Sprintf("set vlans %s vlan-id %s", name, id)}
		if l3 := row.Get("L3 Interface"); !model.IsBlank(l3) {
			lines = append(lines, fmt.Sprintf("set vlans %s l3-interface %s", name, l3))
		}
		return ok(lines...)
	},
}

// IRBDomain renders the IRB_Interfaces table.
var IRBDomain = &Domain{
	Name:     "IRB_Interfaces",
	Title:    "IRB Interface Configuration",
	Required: []string{"Interface", "IP Address", "Prefix Length"},
	MapRow: func(row model.Row, ctx *Context) ([]string, string, error) {
		iface := row.Get("Interface")
		if model.IsBlank(iface) {
			return skip()
		}
		base, unit := model.SplitUnit(iface)
		var lines []string
		if desc := row.Get("Description"); !model.IsBlank(desc) {
			lines = append(lines, fmt.Sprintf(`set interfaces %s unit %s description "%s"`, base, unit, desc))
		}
		lines = append(lines, fmt.Sprintf("set interfaces %s unit %s family inet address %s/%s",
			base, unit, row.Get("IP Address"), row.Get("Prefix Length")))
		return ok(lines...)
	},
}

// InterfaceDomain renders the Interfaces table (access/trunk ports).
var InterfaceDomain = &Domain{
	Name:     "Interfaces",
	Title:    "Interface Configuration",
	Required: []string{"Interface", "Mode"},
	MapRow: func(row model.Row, ctx *Context) ([]string, string, error) {
		iface := row.Get("Interface")
		if model.IsBlank(iface) {
			return skip()
		}

		var lines []string
		if desc := row.Get("Description"); !model.IsBlank(desc) {
			lines = append(lines, fmt.Sprintf(`set interfaces %s description "%s"`, iface, desc))
		}
		if speed := row.Get("Speed"); !model.IsBlank(speed) && speed != "auto" {
			lines = append(lines, fmt.Sprintf("set interfaces %s speed %s", iface, speed))
		}
		if duplex := row.Get("Duplex"); !model.IsBlank(duplex) && duplex != "auto" {
			lines = append(lines, fmt.Sprintf("set interfaces %s link-mode %s-duplex", iface, duplex))
		}

		lines = append(lines, fmt.Sprintf("set interfaces %s unit 0 family ethernet-switching", iface))

		vlans := row.Get("VLANs")
		switch row.Get("Mode") {
		case "trunk":
			lines = append(lines, fmt.Sprintf("set interfaces %s unit 0 family ethernet-switching interface-mode trunk", iface))
			if !model.IsBlank(vlans) {
				members := strings.ReplaceAll(vlans, ",", " ")
				lines = append(lines, fmt.Sprintf("set interfaces %s unit 0 family ethernet-switching vlan members [%s]", iface, members))
			}
			if native := row.Get("Native VLAN"); !model.IsBlank(native) {
				lines = append(lines, fmt.Sprintf("set interfaces %s native-vlan-id %s", iface, native))
			}
		case "access":
			lines = append(lines, fmt.Sprintf("set interfaces %s unit 0 family ethernet-switching interface-mode access", iface))
			if !model.IsBlank(vlans) {
				lines = append(lines, fmt.Sprintf("set interfaces %s unit 0 family ethernet-switching vlan members %s", iface, vlans))
			}
		}

		if model.IsNo(row.Get("Enabled")) {
			lines = append(lines, fmt.Sprintf("set interfaces %s disable", iface))
		}
		return ok(lines...)
	},
}

// ManagementDomain renders the Management table. The device's
// management IP, when set on the context, replaces the row's own
// IP Address cell.
var ManagementDomain = &Domain{
	Name:     "Management",
	Title:    "Management Interface Configuration",
	Required: []string{"Interface", "IP Address", "Prefix Length"},
	MapRow: func(row model.Row, ctx *Context) ([]string, string, error) {
		iface := row.Get("Interface")
		if model.IsBlank(iface) {
			return skip()
		}
		ip := row.Get("IP Address")
		if !model.IsBlank(ctx.MgmtIP) {
			ip = ctx.MgmtIP
		}
		var lines []string
		if desc := row.Get("Description"); !model.IsBlank(desc) {
			lines = append(lines, fmt.Sprintf(`set interfaces %s description "%s"`, iface, desc))
		}
		lines = append(lines, fmt.Sprintf("set interfaces %s unit 0 family inet address %s/%s",
			iface, ip, row.Get("Prefix Length")))
		if gw := row.Get("Gateway"); !model.IsBlank(gw) {
			lines = append(lines, "set routing-options static route 0.0.0.0/0 next-hop "+gw)
		}
		return ok(lines...)
	},
}

// hardeningParams maps Hardening features that interpolate their
// Setting cell into the command.
var hardeningParams = map[string]string{
	"ssh_root_login":       "set system services ssh root-login %s",
	"max_sessions":         "set system services ssh connection-limit %s",
	"connection_limit":     "set system services ssh rate-limit %s",
	"authentication_order": "set system authentication-order [ %s ]",
}

// HardeningDomain renders the Hardening table. screen_* features are
// collected into a trailing IDS Screen sub-section.
var HardeningDomain = &Domain{
	Name:     "Hardening",
	Title:    "Security Hardening Configuration",
	Required: []string{"Feature", "Setting"},
	MapRow: func(row model.Row, ctx *Context) ([]string, string, error) {
		feature := strings.TrimSpace(row.Get("Feature"))
		setting := row.Get("Setting")
		if model.IsBlank(feature) || model.IsBlank(setting) {
			return skip()
		}
		if feature == "ssh_protocol" {
			if setting == "v2" {
				return ok("set system services ssh protocol-version v2")
			}
			return skip()
		}
		if tmpl, known := hardeningParams[feature]; known {
			return ok(fmt.Sprintf(tmpl, setting))
		}
		if attack, isScreen := strings.CutPrefix(feature, "screen_"); isScreen {
			if len(ctx.trailer) == 0 {
				ctx.defer_("", "# IDS Screen Configuration")
			}
			ctx.defer_(fmt.Sprintf("set security screen ids-option untrust-screen %s threshold %s",
				strings.ReplaceAll(attack, "_", "-"), setting))
			return skip()
		}
		return skip()
	},
}

// SNMPDomain renders the SNMP table: v2c communities and v3 USM users.
var SNMPDomain = &Domain{
	Name:     "SNMP",
	Title:    "SNMP Configuration",
	Required: []string{"Community/User", "Type"},
	MapRow: func(row model.Row, ctx *Context) ([]string, string, error) {
		name := row.Get("Community/User")
		if model.IsBlank(name) {
			return skip()
		}
		switch row.Get("Type") {
		case "community":
			access := row.Get("Access")
			if model.IsBlank(access) {
				access = "read-only"
			}
			return ok(fmt.Sprintf("set snmp community %s authorization %s", name, access))
		case "v3-user":
			var lines []string
			if auth := row.Get("Authorization"); !model.IsBlank(auth) {
				proto, pass, found := strings.Cut(auth, ":")
				if !found {
					return rowErr("Authorization", "expected protocol:password, got %q", auth)
				}
				lines = append(lines, fmt.Sprintf(
					`set snmp v3 usm local-engine user %s authentication-%s authentication-password "%s"`,
					name, proto, pass))
			}
			if priv := row.Get("Privacy"); !model.IsBlank(priv) {
				proto, pass, found := strings.Cut(priv, ":")
				if !found {
					return rowErr("Privacy", "expected protocol:password, got %q", priv)
				}
				lines = append(lines, fmt.Sprintf(
					`set snmp v3 usm local-engine user %s privacy-%s privacy-password "%s"`,
					name, proto, pass))
			}
			return ok(lines...)
		}
		return skip()
	},
}
