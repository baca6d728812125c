package mcp

import (
	"fmt"
	"net"
)

// Port range probed when HTTP mode is requested without an explicit port.
const (
	DefaultPortMin = 8090
	DefaultPortMax = 8099
)

// FindAvailablePort returns the first port in [startPort, endPort] that
// accepts a loopback listener.
func FindAvailablePort(startPort, endPort int) (int, error) {
	for port := startPort; port <= endPort; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", startPort, endPort)
}
