package capture

import "strings"

// UnknownDeviceType is the device type id used for models missing from the
// lookup table.
const UnknownDeviceType = 0

// DeviceModel is an entry of the device lookup table.
type DeviceModel struct {
	Name   string `json:"name" yaml:"name"`
	TypeID int    `json:"typeId" yaml:"type_id"`
}

// DeviceTable maps the device key found in a capture header to the name and
// type id the viewer expects. Keys are the family token with hyphens removed
// followed by the model token, e.g. "WiSpy" + "24x2".
type DeviceTable map[string]DeviceModel

// DefaultDevices returns the built-in lookup table.
func DefaultDevices() DeviceTable {
	return DeviceTable{
		"WiSpy24x2": {Name: "WiSpy24X2", TypeID: 4},
		"WiSpy24X2": {Name: "WiSpy24X2", TypeID: 4},
		"WiSpyDBx3": {Name: "WiSpyDBx3", TypeID: 10},
	}
}

// With returns a copy of the table extended with extra entries. Entries in
// extra replace built-in ones with the same key.
func (t DeviceTable) With(extra DeviceTable) DeviceTable {
	merged := make(DeviceTable, len(t)+len(extra))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range extra {
		if v.Name == "" {
			v.Name = k
		}
		merged[k] = v
	}
	return merged
}

// DeviceKey builds the lookup key from the raw family and model tokens.
func DeviceKey(family, model string) string {
	return strings.ReplaceAll(family, "-", "") + model
}

// Lookup resolves the raw header tokens. Unknown devices keep their key as
// name and map to UnknownDeviceType.
func (t DeviceTable) Lookup(family, model string) DeviceModel {
	key := DeviceKey(family, model)
	if m, ok := t[key]; ok {
		return m
	}
	return DeviceModel{Name: key, TypeID: UnknownDeviceType}
}
