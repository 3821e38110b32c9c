// Package config provides solver configuration management.
//
// Configurations are stored as JSON files in a configs directory. Each one
// names a solver profile and sets its tuning values:
//   - max_turns: the turn ceiling after which a partial schedule is emitted
//   - log_turns: per-turn progress logging
//
// The Manager loads, validates and caches configurations by name and
// supplies a built-in default when none is available on disk.
package config
