package bridge

import (
	"strings"
	"sync"
)

// Set is the in-memory collection of currently known descriptors,
// keyed by lowercase bridge address. Re-detection supersedes an entry
// wholesale, it never mutates the stored descriptor.
type Set struct {
	mu        sync.RWMutex
	byAddress map[string]*Descriptor
}

// NewSet create an empty descriptor set
func NewSet() *Set {
	return &Set{byAddress: make(map[string]*Descriptor)}
}

// Put supersede the descriptor stored for its address
func (s *Set) Put(d *Descriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byAddress[strings.ToLower(d.Address)] = d
}

// Get the descriptor at address, nil if unknown
func (s *Set) Get(address string) *Descriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byAddress[strings.ToLower(address)]
}

// All returns a snapshot slice of every known descriptor
func (s *Set) All() []*Descriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]*Descriptor, 0, len(s.byAddress))
	for _, d := range s.byAddress {
		all = append(all, d)
	}
	return all
}

// Len number of known descriptors
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byAddress)
}
