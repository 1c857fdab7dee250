// Package inject defines the input injection capability the dispatcher
// drives, plus a registry of named backends.
package inject

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/remote-input/hidinject/keymap"
	"github.com/remote-input/hidinject/protocol"
)

// Injector synthesizes OS level input. Implementations are called from a
// single goroutine and need not be safe for concurrent use.
type Injector interface {
	// MoveRelative moves the pointer by dx, dy pixels.
	MoveRelative(dx, dy int) error
	// SetButton presses or releases a pointer button.
	SetButton(b protocol.Button, pressed bool) error
	// Scroll turns the vertical wheel by delta.
	Scroll(delta int) error
	// SetKey presses or releases the key with HID usage u.
	SetKey(u keymap.Usage, pressed bool) error
	// Close releases any resources held by the backend.
	Close() error
}

// PadInjector is implemented by backends that can drive a virtual gamepad.
// SetPad runs on the pad listener's goroutine, so it may be called
// concurrently with the Injector methods.
type PadInjector interface {
	// SetPad replaces the full gamepad state.
	SetPad(p protocol.Pad) error
}

// Factory opens a backend.
type Factory func(cfg Config, logger *slog.Logger) (Injector, error)

var (
	backends   = make(map[string]Factory)
	backendsMu sync.RWMutex
)

// Register makes a backend available under name. Backend packages call it
// from init(). The name is case-insensitive.
func Register(name string, f Factory) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[strings.ToLower(name)] = f
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New opens the backend selected by cfg.Backend.
func New(cfg Config, logger *slog.Logger) (Injector, error) {
	backendsMu.RLock()
	f, ok := backends[strings.ToLower(cfg.Backend)]
	backendsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown injection backend %q (available: %s)", cfg.Backend, strings.Join(Backends(), ", "))
	}
	inj, err := f(cfg, logger.With("backend", strings.ToLower(cfg.Backend)))
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}
	return inj, nil
}
