package entity

import "encoding/json"

type Setting struct {
	Key         string `json:"setting_key"`
	Value       any    `json:"setting_value"`
	Group       string `json:"setting_group,omitempty"`
	Description string `json:"description,omitempty"`
}

// Kinds a setting value keeps when it is edited through the form.
const (
	SettingString = "string"
	SettingBool   = "bool"
	SettingNumber = "number"
)

// Form field prefixes: "setting.<key>" carries the value, "kind.<key>" its JSON kind.
const (
	SettingValuePrefix = "setting."
	SettingKindPrefix  = "kind."
)

// SettingKind reports how a value decoded from the backend should be sent back.
func SettingKind(v any) string {
	switch v.(type) {
	case bool:
		return SettingBool
	case json.Number, float64, int, int64:
		return SettingNumber
	}
	return SettingString
}
