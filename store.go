package kolladm

import (
	"bytes"
	"encoding/json"

	"github.com/kolladm/kolladm/pkg/filestore"
)

// Store persists the inventory aggregate as an indented json document at a
// fixed path. The whole aggregate is written on every save, there is no
// partial update.
type Store struct {
	Path      string
	AdminUser string
}

// NewStore returns a store bound to the configured inventory path.
func NewStore(cfg *Config) *Store {
	return &Store{
		Path:      cfg.InventoryPath(),
		AdminUser: cfg.AdminUser,
	}
}

// Load reads the inventory document. A missing or blank file yields a
// freshly seeded inventory. A document from an older schema version is
// upgraded and written back before it is returned. Any read or parse
// failure is a PersistenceError.
func (s *Store) Load() (*Inventory, error) {
	data, err := filestore.Read(s.Path)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: s.Path, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return NewInventory(s.AdminUser), nil
	}

	inv := &Inventory{}
	if err := json.Unmarshal(data, inv); err != nil {
		return nil, &PersistenceError{Op: "load", Path: s.Path, Err: err}
	}
	inv.adminUser = s.AdminUser

	if inv.version != ClassVersion {
		inv.upgrade()
		if err := s.Save(inv); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// Save writes the full aggregate to the store's path as one atomic write.
func (s *Store) Save(inv *Inventory) error {
	data, err := json.MarshalIndent(inv, "", "    ")
	if err != nil {
		return &PersistenceError{Op: "save", Path: s.Path, Err: err}
	}
	if err := filestore.WriteAtomic(s.Path, append(data, '\n'), 0640); err != nil {
		return &PersistenceError{Op: "save", Path: s.Path, Err: err}
	}
	return nil
}
