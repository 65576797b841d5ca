package domain

import (
	"fmt"
	"strings"
)

// Host is the display record for a single container.
type Host struct {
	Name     string
	Protocol string
	IP       string
	Port     string
	URL      string
}

func NewHost(name, protocol, ip, port string) Host {
	return Host{
		Name:     name,
		Protocol: protocol,
		IP:       ip,
		Port:     port,
		URL:      hostURL(ip, port),
	}
}

// HostFromContainer keeps only the first port binding and first network of c.
// Engine names carry a leading "/" which is dropped.
func HostFromContainer(c InspectedContainer) Host {
	port, _ := c.PrimaryPort()
	network, _ := c.PrimaryNetwork()
	return NewHost(strings.TrimPrefix(c.Name, "/"), port.Protocol, network.IPAddress, port.Port)
}

func hostURL(ip, port string) string {
	if ip == "" || port == "" {
		return ""
	}
	return fmt.Sprintf("http://%s:%s", ip, port)
}
