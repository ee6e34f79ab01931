package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"strings"
)

// DeviceID reads the physical MAC address of the machine and hashes it
// into a clean, stable ID like "RHQ-A1B2C3D4". It identifies which
// device a store's data lives on (shown in the system status and
// settings surfaces).
func DeviceID() string {
	interfaces, err := net.Interfaces()
	if err != nil {
		return "UNKNOWN-DEVICE"
	}

	var macAddress string
	for _, i := range interfaces {
		// First active physical interface wins.
		if i.Flags&net.FlagUp != 0 && len(i.HardwareAddr) > 0 {
			macAddress = i.HardwareAddr.String()
			break
		}
	}

	if macAddress == "" {
		return "UNKNOWN-DEVICE"
	}

	hash := sha256.Sum256([]byte(macAddress + "REPLENISHHQ-DEVICE-SALT"))
	hashString := hex.EncodeToString(hash[:])

	return "RHQ-" + strings.ToUpper(hashString[:8])
}
