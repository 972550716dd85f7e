package sensorconfig

import "gopkg.in/ini.v1"

// Well-known sensor section keys
const (
	KeyAddress     = "address"
	KeyRORG        = "rorg"
	KeyFunc        = "func"
	KeyType        = "type"
	KeyPublishRSSI = "publish_rssi"
)

// Field is a decoded key/value pair from a sensor section.
type Field struct {
	Key   string      `yaml:"key"`
	Value OptionalInt `yaml:"value"`
}

// SensorRecord is the typed projection of one sensor section. It is rebuilt
// from the document whenever the file changes and is never written back.
type SensorRecord struct {
	Section     string      `yaml:"section"`      // Section name (the radio address as written in the file)
	Name        string      `yaml:"name"`         // MQTT prefix + section name
	Address     OptionalInt `yaml:"address"`      // Radio address
	RORG        OptionalInt `yaml:"rorg"`         // EEP radio organization
	Func        OptionalInt `yaml:"func"`         // EEP function
	Type        OptionalInt `yaml:"type"`         // EEP type
	PublishRSSI OptionalInt `yaml:"publish_rssi"` // 1 to publish signal strength
	Extra       []Field     `yaml:"extra,omitempty"`
}

// Field looks up a decoded value by key, including the well-known keys.
// For the well-known keys the boolean reports whether a value decoded, since
// a missing key and an undecodable one both project to Absent. For any other
// key it reports whether the key is in the section, whatever its value.
func (r SensorRecord) Field(key string) (OptionalInt, bool) {
	switch key {
	case KeyAddress:
		return r.Address, !r.Address.IsAbsent()
	case KeyRORG:
		return r.RORG, !r.RORG.IsAbsent()
	case KeyFunc:
		return r.Func, !r.Func.IsAbsent()
	case KeyType:
		return r.Type, !r.Type.IsAbsent()
	case KeyPublishRSSI:
		return r.PublishRSSI, !r.PublishRSSI.IsAbsent()
	}
	for _, f := range r.Extra {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Absent(), false
}

// PublishesRSSI reports whether publish_rssi is set to a non-zero value.
func (r SensorRecord) PublishesRSSI() bool {
	return r.PublishRSSI.Or(0) != 0
}

// clone returns a copy that shares no slices with r.
func (r SensorRecord) clone() SensorRecord {
	if r.Extra != nil {
		r.Extra = append([]Field(nil), r.Extra...)
	}
	return r
}

// projectSection builds a SensorRecord from a sensor section.
func projectSection(section *ini.Section, prefix string) SensorRecord {
	rec := SensorRecord{
		Section: section.Name(),
		Name:    prefix + section.Name(),
	}

	for _, key := range section.Keys() {
		value := ParseIntOrAbsent(key.Value())
		switch key.Name() {
		case KeyAddress:
			rec.Address = value
		case KeyRORG:
			rec.RORG = value
		case KeyFunc:
			rec.Func = value
		case KeyType:
			rec.Type = value
		case KeyPublishRSSI:
			rec.PublishRSSI = value
		default:
			rec.Extra = append(rec.Extra, Field{Key: key.Name(), Value: value})
		}
	}

	return rec
}

func cloneRecords(records []SensorRecord) []SensorRecord {
	out := make([]SensorRecord, len(records))
	for i, r := range records {
		out[i] = r.clone()
	}
	return out
}
