package kolladm

import "encoding/json"

type (
	// Host is a physical machine openstack is deployed onto
	Host struct {
		Name       string
		Alias      string
		IsMgmt     bool
		Hypervisor string
		vars       map[string]string
	}

	// Hosts is an alias to a slice of *Host
	Hosts []*Host

	// hostJSON is used to ease json marshal/unmarshal
	hostJSON struct {
		Name       string            `json:"name"`
		Alias      string            `json:"alias"`
		IsMgmt     bool              `json:"isMgmt"`
		Hypervisor string            `json:"hypervisor"`
		Vars       map[string]string `json:"vars"`
	}
)

// NewHost creates a blank Host
func NewHost(name string) *Host {
	return &Host{
		Name: name,
		vars: make(map[string]string),
	}
}

// Vars returns a copy of the host's variables
func (h *Host) Vars() map[string]string {
	vars := make(map[string]string, len(h.vars))
	for k, v := range h.vars {
		vars[k] = v
	}
	return vars
}

// SetVar sets a host variable
func (h *Host) SetVar(name, value string) {
	h.vars[name] = value
}

// ClearVar removes a host variable
func (h *Host) ClearVar(name string) {
	delete(h.vars, name)
}

// MarshalJSON is a helper for marshalling a Host
func (h *Host) MarshalJSON() ([]byte, error) {
	data := hostJSON{
		Name:       h.Name,
		Alias:      h.Alias,
		IsMgmt:     h.IsMgmt,
		Hypervisor: h.Hypervisor,
		Vars:       h.vars,
	}
	return json.Marshal(data)
}

// UnmarshalJSON is a helper for unmarshalling a Host
func (h *Host) UnmarshalJSON(input []byte) error {
	data := hostJSON{}
	if err := json.Unmarshal(input, &data); err != nil {
		return err
	}

	h.Name = data.Name
	h.Alias = data.Alias
	h.IsMgmt = data.IsMgmt
	h.Hypervisor = data.Hypervisor
	h.vars = data.Vars
	if h.vars == nil {
		h.vars = make(map[string]string)
	}
	return nil
}
