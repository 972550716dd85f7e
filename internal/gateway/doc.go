// Package gateway connects the configuration store to the component that
// talks to the EnOcean radio and the MQTT broker.
//
// The radio/broker communicator itself lives outside this module; it only
// needs a SensorSource. Watcher polls that source so roster changes made by
// editing the config file are noticed without a restart, and LogCommunicator
// is a stand-in that reports those changes through the log.
package gateway
