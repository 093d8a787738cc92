package kolladm

import (
	"encoding/json"
	"sort"
)

type (
	// SubService is a finer-grained component of a Service that may be
	// placed independently. It gets its hosts from exactly one source: a
	// set of group associations or its parent service.
	SubService struct {
		Name string
		bind binding
		vars map[string]string
	}

	// SubServices is an alias to a slice of *SubService
	SubServices []*SubService

	// binding is the placement source for a sub-service. Parent and Groups
	// are mutually exclusive, the whole value is replaced on every switch
	// so both can never be set at once.
	binding struct {
		Parent string   `json:"parent,omitempty"`
		Groups []string `json:"groups,omitempty"`
	}

	// subServiceJSON is used to ease json marshal/unmarshal
	subServiceJSON struct {
		Name    string            `json:"name"`
		Binding binding           `json:"binding"`
		Vars    map[string]string `json:"vars"`
	}
)

// NewSubService creates a blank SubService
func NewSubService(name string) *SubService {
	return &SubService{
		Name: name,
		vars: make(map[string]string),
	}
}

// AddGroup associates the sub-service with a group, dropping any parent
// service association.
func (s *SubService) AddGroup(groupname string) {
	if groupname == "" {
		return
	}
	if s.bind.Parent != "" {
		s.bind = binding{}
	}
	for _, name := range s.bind.Groups {
		if name == groupname {
			return
		}
	}
	s.bind.Groups = append(s.bind.Groups, groupname)
}

// RemoveGroup drops the sub-service's association with a group. When the
// last group is removed the sub-service re-associates to the service that
// declares it in the catalog.
func (s *SubService) RemoveGroup(groupname string) {
	for i, name := range s.bind.Groups {
		if name == groupname {
			s.bind.Groups = append(s.bind.Groups[:i], s.bind.Groups[i+1:]...)
			break
		}
	}
	if len(s.bind.Groups) == 0 {
		if parent := defaultParentOf(s.Name); parent != "" {
			s.SetParent(parent)
		}
	}
}

// GroupNames returns the associated group names, sorted. The list is empty
// when the sub-service inherits from its parent.
func (s *SubService) GroupNames() []string {
	names := make([]string, len(s.bind.Groups))
	copy(names, s.bind.Groups)
	sort.Strings(names)
	return names
}

// SetParent associates the sub-service with a parent service, dropping all
// group associations.
func (s *SubService) SetParent(serviceName string) {
	s.bind = binding{Parent: serviceName}
}

// ParentName returns the parent service name, or "" when the sub-service is
// associated with groups directly.
func (s *SubService) ParentName() string {
	return s.bind.Parent
}

// Inherited reports whether the sub-service takes its placement from its
// parent service.
func (s *SubService) Inherited() bool {
	return s.bind.Parent != ""
}

// Vars returns a copy of the sub-service's variables
func (s *SubService) Vars() map[string]string {
	vars := make(map[string]string, len(s.vars))
	for k, v := range s.vars {
		vars[k] = v
	}
	return vars
}

// MarshalJSON is a helper for marshalling a SubService
func (s *SubService) MarshalJSON() ([]byte, error) {
	data := subServiceJSON{
		Name:    s.Name,
		Binding: s.bind,
		Vars:    s.vars,
	}
	return json.Marshal(data)
}

// UnmarshalJSON is a helper for unmarshalling a SubService
func (s *SubService) UnmarshalJSON(input []byte) error {
	data := subServiceJSON{}
	if err := json.Unmarshal(input, &data); err != nil {
		return err
	}

	s.Name = data.Name
	s.bind = data.Binding
	s.vars = data.Vars
	if s.vars == nil {
		s.vars = make(map[string]string)
	}
	return nil
}
