// Package source exposes the contracts for fetching generation inputs (config
// and template documents) from files, fs.FS entries, or URLs. Implementations
// live under internal/source so the public API stays decoupled from the
// loading strategies.
package source
