package configs

import "strings"

// Store selects the campaign store backing medium. The port contract is
// identical for both; "memory" keeps everything in process and is meant for
// development and tests, "postgres" persists the collection in the kv_store
// table.
type Store struct {
	Backend string `env:"BACKEND" envDefault:"postgres"`
}

// UseMemory reports whether the in-memory backend was requested. Any value
// other than "memory" selects Postgres.
func (s Store) UseMemory() bool {
	return strings.EqualFold(s.Backend, "memory")
}
