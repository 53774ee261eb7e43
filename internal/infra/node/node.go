package node

import (
	"net"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Node identifies the running server instance.
type Node struct {
	ID         string
	Hostname   string
	IPAddress  string
	Version    string
	CommitHash string
}

// Set at build time through -ldflags.
var Version = "development"
var CommitHash = "unknown"

const _loopback = "127.0.0.1"

var (
	current     *Node
	currentOnce sync.Once
)

// GetNodeInfo returns the node of this process. The ID is generated once per
// process.
func GetNodeInfo() *Node {
	currentOnce.Do(func() {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "localhost"
		}

		current = &Node{
			ID:         uuid.NewString(),
			Hostname:   hostname,
			IPAddress:  firstIPAddress(net.InterfaceAddrs),
			Version:    Version,
			CommitHash: CommitHash,
		}
	})

	info := *current
	return &info
}

// firstIPAddress picks the first non-loopback IPv4 address without opening a
// connection. It falls back to the loopback address.
func firstIPAddress(addrs func() ([]net.Addr, error)) string {
	list, err := addrs()
	if err != nil {
		return _loopback
	}

	for _, addr := range list {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip := ipNet.IP.To4(); ip != nil {
			return ip.String()
		}
	}
	return _loopback
}
