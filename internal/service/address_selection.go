package service

import (
	"sync"

	"github.com/RoyceAzure/lab/santoral/internal/model"
)

// AddressSelection holds the shipping address chosen for the checkout in
// progress. It is never persisted. Session resets it on identity change.
type AddressSelection struct {
	mu       sync.RWMutex
	selected *model.Address
}

func NewAddressSelection() *AddressSelection {
	return &AddressSelection{}
}

// Select replaces the current selection unconditionally.
func (a *AddressSelection) Select(address model.Address) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selected = &address
}

func (a *AddressSelection) Current() (model.Address, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.selected == nil {
		return model.Address{}, false
	}
	return *a.selected, true
}

func (a *AddressSelection) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selected = nil
}
