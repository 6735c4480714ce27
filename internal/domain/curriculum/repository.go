package curriculum

import "context"

// ══════════════════════════════════════════════════════════════════════════════
// PORTS
// These interfaces define the contract with storage and export.
// Implementations live in infrastructure.
// ══════════════════════════════════════════════════════════════════════════════

// Store persists the whole program as one unit. There is a single program
// per store.
type Store interface {
	// Save replaces the stored program.
	Save(ctx context.Context, p *Program) error

	// Load returns the stored program, or (nil, nil) if nothing was saved yet.
	Load(ctx context.Context) (*Program, error)

	// Exists reports whether a program has been saved.
	Exists(ctx context.Context) (bool, error)

	// Delete removes the stored program. Deleting an empty store is not an error.
	Delete(ctx context.Context) error
}

// Exporter writes a flat tabular view of the program: one row per module,
// semester by semester.
type Exporter interface {
	// Export writes the program and returns the path that was written.
	Export(ctx context.Context, p *Program) (string, error)
}
