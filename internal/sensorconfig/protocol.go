package sensorconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// ProtocolCode is an EnOcean Equipment Profile (EEP) identifier, written as
// three hyphen-separated hex bytes: RORG-FUNC-TYPE, e.g. "D5-00-01".
type ProtocolCode struct {
	RORG uint8
	Func uint8
	Type uint8
}

// ParseProtocolCode parses an EEP string such as "D5-00-01" or "0xa5-0x02-0x05".
func ParseProtocolCode(code string) (ProtocolCode, error) {
	parts := strings.Split(strings.TrimSpace(code), "-")
	if len(parts) != 3 {
		return ProtocolCode{}, &MalformedProtocolCodeError{
			Code:   code,
			Reason: fmt.Sprintf("expected 3 hyphen-separated components, got %d", len(parts)),
		}
	}

	var values [3]uint8
	for i, part := range parts {
		digits := strings.TrimPrefix(strings.TrimPrefix(part, "0x"), "0X")
		if digits == "" {
			return ProtocolCode{}, &MalformedProtocolCodeError{
				Code:   code,
				Reason: fmt.Sprintf("component %d is empty", i+1),
			}
		}
		v, err := strconv.ParseUint(digits, 16, 8)
		if err != nil {
			return ProtocolCode{}, &MalformedProtocolCodeError{
				Code:   code,
				Reason: fmt.Sprintf("component %d (%q) is not a hex byte", i+1, part),
				Err:    err,
			}
		}
		values[i] = uint8(v)
	}

	return ProtocolCode{RORG: values[0], Func: values[1], Type: values[2]}, nil
}

// String renders the code in canonical upper-case form.
func (p ProtocolCode) String() string {
	return fmt.Sprintf("%02X-%02X-%02X", p.RORG, p.Func, p.Type)
}

// parseAddress parses a hex radio address with or without a 0x prefix.
func parseAddress(address string) (int64, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(address), "0x"), "0X")
	v, err := strconv.ParseInt(digits, 16, 64)
	if err != nil {
		return 0, &InvalidAddressError{Address: address, Err: err}
	}
	return v, nil
}
