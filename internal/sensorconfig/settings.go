package sensorconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// Reserved section keys
const (
	KeyEnOceanPort   = "enocean_port"
	KeyMQTTHost      = "mqtt_host"
	KeyMQTTPort      = "mqtt_port"
	KeyMQTTClientID  = "mqtt_client_id"
	KeyMQTTKeepalive = "mqtt_keepalive"
	KeyMQTTPrefix    = "mqtt_prefix"
	KeyMQTTUser      = "mqtt_user"
	KeyMQTTPassword  = "mqtt_pwd"
)

const (
	defaultMQTTPort      = 1883
	defaultMQTTKeepalive = 60
)

// GlobalSettings is the typed view of the CONFIG section.
type GlobalSettings struct {
	EnOceanPort   string            `yaml:"enocean_port"`
	MQTTHost      string            `yaml:"mqtt_host"`
	MQTTPort      int               `yaml:"mqtt_port"`
	MQTTClientID  string            `yaml:"mqtt_client_id,omitempty"`
	MQTTKeepalive int               `yaml:"mqtt_keepalive"`
	MQTTPrefix    string            `yaml:"mqtt_prefix"`
	MQTTUser      string            `yaml:"mqtt_user,omitempty"`
	MQTTPassword  string            `yaml:"-"` // Never echoed
	Extra         map[string]string `yaml:"extra,omitempty"`
}

// ValidationError lists everything wrong with the CONFIG section.
type ValidationError struct {
	Problems []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid [%s] section: %s", ReservedSection, strings.Join(e.Problems, "; "))
}

// decodeSettings builds GlobalSettings from the raw CONFIG mapping. Numeric
// keys that do not parse keep their defaults and are reported by Validate.
func decodeSettings(raw map[string]string) (GlobalSettings, []string) {
	s := GlobalSettings{
		MQTTPort:      defaultMQTTPort,
		MQTTKeepalive: defaultMQTTKeepalive,
	}
	var problems []string

	for key, value := range raw {
		switch key {
		case KeyEnOceanPort:
			s.EnOceanPort = value
		case KeyMQTTHost:
			s.MQTTHost = value
		case KeyMQTTPort:
			port, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || port <= 0 || port > 65535 {
				problems = append(problems, fmt.Sprintf("%s %q is not a valid port", key, value))
				continue
			}
			s.MQTTPort = port
		case KeyMQTTClientID:
			s.MQTTClientID = value
		case KeyMQTTKeepalive:
			keepalive, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || keepalive < 0 {
				problems = append(problems, fmt.Sprintf("%s %q is not a valid number of seconds", key, value))
				continue
			}
			s.MQTTKeepalive = keepalive
		case KeyMQTTPrefix:
			s.MQTTPrefix = value
		case KeyMQTTUser:
			s.MQTTUser = value
		case KeyMQTTPassword:
			s.MQTTPassword = value
		default:
			if s.Extra == nil {
				s.Extra = make(map[string]string)
			}
			s.Extra[key] = value
		}
	}

	return s, problems
}

// Validate checks that the settings needed to start the gateway are present.
func (s GlobalSettings) Validate() error {
	var problems []string
	if s.EnOceanPort == "" {
		problems = append(problems, KeyEnOceanPort+" is required")
	}
	if s.MQTTHost == "" {
		problems = append(problems, KeyMQTTHost+" is required")
	}
	if s.MQTTPrefix == "" {
		problems = append(problems, KeyMQTTPrefix+" is required")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
