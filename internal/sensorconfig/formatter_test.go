package sensorconfig

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func getSampleRecords() []SensorRecord {
	return []SensorRecord{
		{
			Section:     "0x01A64F7F",
			Name:        "enocean/0x01A64F7F",
			Address:     Some(0x01A64F7F),
			RORG:        Some(0xD5),
			Func:        Some(0x00),
			Type:        Some(0x01),
			PublishRSSI: Some(1),
		},
		{
			Section: "broken",
			Name:    "enocean/broken",
			RORG:    Some(0xA5),
			Func:    Some(0x200),
			Extra:   []Field{{Key: "room", Value: Absent()}},
		},
	}
}

func TestSensorRecord_EEP(t *testing.T) {
	records := getSampleRecords()
	assert.Equal(t, "D5-00-01", records[0].EEP())
	assert.Equal(t, "A5-??-??", records[1].EEP())
}

func TestSensorRecord_Summary(t *testing.T) {
	summary := getSampleRecords()[0].Summary()

	assert.NotContains(t, summary, "\n")
	for _, part := range []string{"enocean/0x01A64F7F", "0x01A64F7F", "D5-00-01", "rssi=true"} {
		assert.Contains(t, summary, part)
	}
}

func TestFormatSensorsCompact(t *testing.T) {
	out := FormatSensorsCompact(getSampleRecords())
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Contains(t, out, "(invalid)")

	assert.Equal(t, "No sensors configured.\n", FormatSensorsCompact(nil))
}

func TestFormatSensorsDetailed(t *testing.T) {
	out := FormatSensorsDetailed(getSampleRecords())

	for _, part := range []string{
		"=== 0x01A64F7F ===",
		"EEP:          D5-00-01",
		"=== broken ===",
		"room: -",
	} {
		assert.Contains(t, out, part)
	}
}

func TestMarshalSensorsYAML(t *testing.T) {
	data, err := MarshalSensorsYAML(getSampleRecords())
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, 0xD5, decoded[0]["rorg"])
	assert.Nil(t, decoded[1]["address"])
	assert.Contains(t, decoded[1], "extra")
	assert.NotContains(t, decoded[0], "extra")

	empty, err := MarshalSensorsYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(empty))
}

func TestGlobalSettings_FormatSettings(t *testing.T) {
	s := GlobalSettings{
		EnOceanPort:   "/dev/ttyUSB0",
		MQTTHost:      "broker.local",
		MQTTPort:      8883,
		MQTTKeepalive: 60,
		MQTTPrefix:    "enocean/",
		MQTTPassword:  "secret",
	}
	out := s.FormatSettings()

	assert.Contains(t, out, "broker.local:8883")
	assert.Contains(t, out, "Client ID:    (none)")
	assert.Contains(t, out, "********")
	assert.NotContains(t, out, "secret")
}
