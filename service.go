package kolladm

import (
	"encoding/json"
	"sort"
)

type (
	// Service is a deployable unit placed on one or more host groups. It may
	// own sub-services that can be placed independently.
	Service struct {
		Name            string
		groupNames      []string
		subServiceNames []string
		vars            map[string]string
	}

	// Services is an alias to a slice of *Service
	Services []*Service

	// serviceJSON is used to ease json marshal/unmarshal
	serviceJSON struct {
		Name            string            `json:"name"`
		GroupNames      []string          `json:"groups"`
		SubServiceNames []string          `json:"subServices"`
		Vars            map[string]string `json:"vars"`
	}
)

// NewService creates a blank Service
func NewService(name string) *Service {
	return &Service{
		Name:            name,
		groupNames:      make([]string, 0),
		subServiceNames: make([]string, 0),
		vars:            make(map[string]string),
	}
}

// AddGroup associates the service with a group
func (s *Service) AddGroup(groupname string) {
	if groupname == "" {
		return
	}
	for _, name := range s.groupNames {
		if name == groupname {
			return
		}
	}
	s.groupNames = append(s.groupNames, groupname)
}

// RemoveGroup drops the service's association with a group
func (s *Service) RemoveGroup(groupname string) {
	for i, name := range s.groupNames {
		if name == groupname {
			s.groupNames = append(s.groupNames[:i], s.groupNames[i+1:]...)
			return
		}
	}
}

// GroupNames returns the associated group names, sorted
func (s *Service) GroupNames() []string {
	names := make([]string, len(s.groupNames))
	copy(names, s.groupNames)
	sort.Strings(names)
	return names
}

// AddSubService registers a sub-service name under this service
func (s *Service) AddSubService(subServiceName string) {
	for _, name := range s.subServiceNames {
		if name == subServiceName {
			return
		}
	}
	s.subServiceNames = append(s.subServiceNames, subServiceName)
}

// SubServiceNames returns the owned sub-service names in insertion order
func (s *Service) SubServiceNames() []string {
	names := make([]string, len(s.subServiceNames))
	copy(names, s.subServiceNames)
	return names
}

// Vars returns a copy of the service's variables
func (s *Service) Vars() map[string]string {
	vars := make(map[string]string, len(s.vars))
	for k, v := range s.vars {
		vars[k] = v
	}
	return vars
}

// MarshalJSON is a helper for marshalling a Service
func (s *Service) MarshalJSON() ([]byte, error) {
	data := serviceJSON{
		Name:            s.Name,
		GroupNames:      s.groupNames,
		SubServiceNames: s.subServiceNames,
		Vars:            s.vars,
	}
	return json.Marshal(data)
}

// UnmarshalJSON is a helper for unmarshalling a Service
func (s *Service) UnmarshalJSON(input []byte) error {
	data := serviceJSON{}
	if err := json.Unmarshal(input, &data); err != nil {
		return err
	}

	s.Name = data.Name
	s.groupNames = data.GroupNames
	s.subServiceNames = data.SubServiceNames
	s.vars = data.Vars
	if s.groupNames == nil {
		s.groupNames = make([]string, 0)
	}
	if s.subServiceNames == nil {
		s.subServiceNames = make([]string, 0)
	}
	if s.vars == nil {
		s.vars = make(map[string]string)
	}
	return nil
}
