package model

// DefaultModel is assumed when an inventory record carries no model tag.
const DefaultModel = "EX4100"

// Device holds the per-device override values applied on top of the
// shared dataset: one Device produces one output file.
type Device struct {
	Serial   string
	Hostname string
	MgmtIP   string
	Model    string
}
