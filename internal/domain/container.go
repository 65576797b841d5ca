package domain

// PortBinding is one "<port>/<protocol>" key of an inspect record.
type PortBinding struct {
	Port     string
	Protocol string
}

// Network is one attached network of an inspect record.
type Network struct {
	Name      string
	IPAddress string
}

// InspectedContainer is the part of an engine inspect record this tool
// reads. Ports and Networks keep the order the engine reported them in.
type InspectedContainer struct {
	ID       string
	Name     string
	Ports    []PortBinding
	Networks []Network
}

// PrimaryPort returns the first reported port binding.
func (c InspectedContainer) PrimaryPort() (PortBinding, bool) {
	if len(c.Ports) == 0 {
		return PortBinding{}, false
	}
	return c.Ports[0], true
}

// PrimaryNetwork returns the first reported network.
func (c InspectedContainer) PrimaryNetwork() (Network, bool) {
	if len(c.Networks) == 0 {
		return Network{}, false
	}
	return c.Networks[0], true
}
