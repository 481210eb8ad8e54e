// Package tablecodes maps opaque per-table access codes to table numbers.
// QR codes printed on each table link to /table-code/<code>; the code is the
// only thing a guest ever sees, so sequential table ids stay unguessable.
//
// The mapping is configuration, not data: it is loaded once at startup
// (compiled-in defaults, optionally replaced by a YAML file) and never
// mutated afterwards, so Resolve is a plain map lookup with no I/O.
package tablecodes

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var defaultMapping = map[string]uint{
	"a1f8c3d2-4b5e-47f9-8a2c-1d6e9f3b5c7a": 1,
	"7b2e5f4a-9c1d-4e8b-b3f6-2a8d7c5e9f1b": 2,
	"c9d4a6f2-1e7b-4c5a-8f3d-6b9e2a4f8c1d": 3,
	"3e7a9b2f-5c4d-4f8a-9e1b-7c6f2d5a3e8b": 4,
	"f5b8d1e9-3a6c-4b7f-2e9d-8a5c1f6b4e7a": 5,
	"2c6e9f3b-7d1a-4e8c-5b9f-1a4d7c2e6f8b": 6,
}

var (
	mu        sync.RWMutex
	codeToID  = defaultMapping
	idToCode  = invert(defaultMapping)
	loadGuard sync.Once
)

// Load installs the table-code mapping for the process. When path is empty
// the compiled-in defaults stay in effect. Only the first call has any
// effect; the mapping is fixed for the lifetime of the process.
func Load(path string) error {
	var err error
	loadGuard.Do(func() {
		if path == "" {
			return
		}
		var mapping map[string]uint
		mapping, err = readFile(path)
		if err != nil {
			return
		}
		mu.Lock()
		codeToID = mapping
		idToCode = invert(mapping)
		mu.Unlock()
	})
	return err
}

func readFile(path string) (map[string]uint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading table codes file: %w", err)
	}
	var mapping map[string]uint
	if err := yaml.Unmarshal(raw, &mapping); err != nil {
		return nil, fmt.Errorf("parsing table codes file: %w", err)
	}
	if err := validate(mapping); err != nil {
		return nil, err
	}
	return mapping, nil
}

// validate rejects anything that is not a bijection onto positive ids.
func validate(mapping map[string]uint) error {
	if len(mapping) == 0 {
		return fmt.Errorf("table codes file is empty")
	}
	seen := make(map[uint]string, len(mapping))
	for code, id := range mapping {
		if code == "" {
			return fmt.Errorf("empty table code for table %d", id)
		}
		if id == 0 {
			return fmt.Errorf("table code %q maps to invalid table id 0", code)
		}
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("table id %d mapped by both %q and %q", id, prev, code)
		}
		seen[id] = code
	}
	return nil
}

func invert(mapping map[string]uint) map[uint]string {
	out := make(map[uint]string, len(mapping))
	for code, id := range mapping {
		out[id] = code
	}
	return out
}

// Resolve returns the table id for a code. Unknown and malformed codes are
// indistinguishable: both return ok=false.
func Resolve(code string) (uint, bool) {
	mu.RLock()
	defer mu.RUnlock()
	id, ok := codeToID[code]
	return id, ok
}

// CodeFor returns the access code for a table id, for QR generation.
func CodeFor(tableID uint) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	code, ok := idToCode[tableID]
	return code, ok
}

// All returns a copy of the id-to-code mapping for the admin QR listing.
func All() map[uint]string {
	mu.RLock()
	defer mu.RUnlock()
	out := make(map[uint]string, len(idToCode))
	for id, code := range idToCode {
		out[id] = code
	}
	return out
}

// NewCode generates a fresh code suitable for provisioning a new table.
// It does not install the code; operators add it to the config file.
func NewCode() string {
	return uuid.NewString()
}
