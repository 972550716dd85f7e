// Package logging provides structured logging for the EnOcean MQTT gateway.
//
// This package wraps a zap logger with package-level convenience functions,
// so components log without threading a logger through every call.
//
// # Outputs
//
// Two outputs are configured by Initialize:
//   - Console (stderr): errors only, or everything when Debug is set.
//     ENOCEANMQTT_LOG_LEVEL overrides the console level.
//   - Log file (optional): info and above, rotated by size with lumberjack.
//
// # Usage
//
//	if err := logging.Initialize(logging.Options{
//	    Debug:   debug,
//	    LogFile: "/var/log/enoceanmqtt.log",
//	}); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
//	logging.Info("Sensor added", zap.String("address", "0x01A64F7F"))
//
// Before Initialize is called the logger is a no-op, which keeps library
// code and tests silent.
package logging
