// Package sensorconfig provides the persistent configuration store for the
// EnOcean to MQTT gateway.
//
// The store wraps a human-editable INI file. One reserved section, CONFIG,
// carries the gateway-wide settings (MQTT broker, topic prefix, serial port).
// Every other section describes one sensor and is keyed by its radio address:
//
//	[CONFIG]
//	enocean_port = /dev/ttyUSB0
//	mqtt_host    = localhost
//	mqtt_prefix  = enocean/
//
//	[0x01A64F7F]
//	address      = 0x01A64F7F
//	rorg         = 0xD5 ; 1BS telegram
//	func         = 0x00
//	type         = 0x01
//	publish_rssi = 1
//
// # Sensor Records
//
// Sections are projected into SensorRecord values. Every field is decoded with
// ParseIntOrAbsent, so a value that is not an integer becomes an absent
// OptionalInt instead of an error. Unknown keys are kept in SensorRecord.Extra.
//
// # Reload Protocol
//
// The file may be edited while the gateway runs. Each public operation first
// compares the file's modification time with the last one the store observed;
// when the file is newer the document is re-read and the cached records are
// discarded. There is no file watch: changes are picked up on the next call.
//
//	store := sensorconfig.Open("/etc/enoceanmqtt.conf")
//	if err := store.LoadError(); err != nil {
//	    log.Fatal(err)
//	}
//
//	sensors, err := store.GetSensors()
//	...
//	err = store.AddSensor("0x01A64F7F", "D5-00-01", true)
//
// # Thread Safety
//
// A Store serializes all operations behind a single mutex. It does not guard
// against other processes writing the same file.
package sensorconfig
