package wizard

import (
	"bytes"
	"text/template"
)

// WizardAnswers holds all user responses from the wizard.
type WizardAnswers struct {
	// Sources to enable
	EnableWorkbook bool
	EnableCSV      bool
	EnableDevices  bool

	// Source settings
	WorkbookPath string
	CSVDir       string
	DevicesPath  string
	WriteExample bool

	// Output settings
	OutputDir string
}

const configTemplate = `# oobgen configuration
# Documentation: https://github.com/ThomasCrouzet/oobgen

output: {{ .OutputDir }}

sources:
{{- if .EnableWorkbook }}
  workbook:
    path: {{ .WorkbookPath }}
{{- end }}
{{- if .EnableCSV }}
  csv:
    dir: {{ .CSVDir }}
{{- end }}
{{- if .EnableDevices }}
  devices:
    path: {{ .DevicesPath }}
{{- end }}
`

// GenerateConfig renders the oobgen.yml content from wizard answers.
func GenerateConfig(answers WizardAnswers) (string, error) {
	tmpl, err := template.New("config").Parse(configTemplate)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExampleWorkbook is a minimal but complete workbook covering every
// domain table, written by 'oobgen init' as a starting point.
const ExampleWorkbook = `# oobgen workbook: one table per configuration domain.
# Blank cells are skipped; unknown parameters are ignored.

System:
  - Parameter: hostname
    Value: ""
  - Parameter: serial_number
    Value: ""
  - Parameter: domain_name
    Value: example.com
  - Parameter: time_zone
    Value: America/New_York
  - Parameter: name_server_1
    Value: 8.8.8.8

NTP:
  - NTP Server: 10.0.0.1
    Prefer: YES
  - NTP Server: 10.0.0.2
    Prefer: NO

Syslog:
  - Syslog Server: 10.0.1.10
    Facility: any
    Level: info

TACACS:
  - TACACS Server: 10.0.2.5
    Secret: changeme
    Port: 49

VLANs:
  - VLAN ID: 10
    VLAN Name: users
    L3 Interface: irb.10
  - VLAN ID: 20
    VLAN Name: voice

IRB_Interfaces:
  - Interface: irb.10
    IP Address: 192.168.10.1
    Prefix Length: 24
    Description: user gateway

Interfaces:
  - Interface: ge-0/0/0
    Description: uplink
    Mode: trunk
    VLANs: 10,20
    Native VLAN: 10
    Enabled: YES
  - Interface: ge-0/0/1
    Mode: access
    VLANs: 10
    Enabled: YES

Management:
  - Interface: me0
    IP Address: 10.10.0.5
    Prefix Length: 24
    Gateway: 10.10.0.1
    Description: OOB management

Hardening:
  - Feature: ssh_protocol
    Setting: v2
  - Feature: ssh_root_login
    Setting: deny
  - Feature: screen_icmp_flood
    Setting: 1000

SNMP:
  - Community/User: netops
    Type: community
    Access: read-only

Inventory:
  - Serial Number: FW3523AB0001
    Hostname: sw-access-01
    Management IP: 10.10.0.11
    Model: EX4100
  - Serial Number: FW3523AB0002
    Hostname: sw-access-02
    Management IP: 10.10.0.12
    Model: EX4400
`
