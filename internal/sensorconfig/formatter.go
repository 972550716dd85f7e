package sensorconfig

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// EEP returns the record's protocol code as "RR-FF-TT", or "??-??-??" parts
// for components that are absent or out of range.
func (r SensorRecord) EEP() string {
	part := func(o OptionalInt) string {
		v, ok := o.Get()
		if !ok || v < 0 || v > 0xFF {
			return "??"
		}
		return fmt.Sprintf("%02X", v)
	}
	return part(r.RORG) + "-" + part(r.Func) + "-" + part(r.Type)
}

// FormatAddress renders the address as 0x-prefixed 8 digit hex.
func (r SensorRecord) FormatAddress() string {
	v, ok := r.Address.Get()
	if !ok {
		return "(invalid)"
	}
	return fmt.Sprintf("0x%08X", v)
}

// Summary returns a one-line summary of the sensor
func (r SensorRecord) Summary() string {
	return fmt.Sprintf("%s [%s] EEP %s rssi=%v", r.Name, r.FormatAddress(), r.EEP(), r.PublishesRSSI())
}

// FormatSensorsCompact renders one line per sensor.
func FormatSensorsCompact(records []SensorRecord) string {
	if len(records) == 0 {
		return "No sensors configured.\n"
	}

	var b strings.Builder
	for _, r := range records {
		b.WriteString(r.Summary())
		b.WriteString("\n")
	}
	return b.String()
}

// FormatSensorsDetailed renders every field of every sensor.
func FormatSensorsDetailed(records []SensorRecord) string {
	if len(records) == 0 {
		return "No sensors configured.\n"
	}

	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("=== %s ===\n", r.Section))
		b.WriteString(fmt.Sprintf("Name:         %s\n", r.Name))
		b.WriteString(fmt.Sprintf("Address:      %s (%s)\n", r.FormatAddress(), r.Address))
		b.WriteString(fmt.Sprintf("EEP:          %s\n", r.EEP()))
		b.WriteString(fmt.Sprintf("Publish RSSI: %s\n", r.PublishRSSI))
		for _, f := range r.Extra {
			b.WriteString(fmt.Sprintf("  %s: %s\n", f.Key, f.Value))
		}
	}
	return b.String()
}

// MarshalSensorsYAML renders the records as a YAML list.
func MarshalSensorsYAML(records []SensorRecord) ([]byte, error) {
	if records == nil {
		records = []SensorRecord{}
	}
	data, err := yaml.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sensors: %w", err)
	}
	return data, nil
}

// FormatSettings renders the gateway settings. The MQTT password is masked.
func (s GlobalSettings) FormatSettings() string {
	var b strings.Builder

	b.WriteString("=== Gateway Settings ===\n")
	b.WriteString(fmt.Sprintf("EnOcean Port: %s\n", orNone(s.EnOceanPort)))
	b.WriteString(fmt.Sprintf("MQTT Broker:  %s:%d\n", orNone(s.MQTTHost), s.MQTTPort))
	b.WriteString(fmt.Sprintf("Client ID:    %s\n", orNone(s.MQTTClientID)))
	b.WriteString(fmt.Sprintf("Keepalive:    %ds\n", s.MQTTKeepalive))
	b.WriteString(fmt.Sprintf("Topic Prefix: %s\n", orNone(s.MQTTPrefix)))
	if s.MQTTUser != "" {
		b.WriteString(fmt.Sprintf("User:         %s\n", s.MQTTUser))
	}
	if s.MQTTPassword != "" {
		b.WriteString("Password:     ********\n")
	}

	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
