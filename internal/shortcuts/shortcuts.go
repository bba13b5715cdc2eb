// Package shortcuts implements the user-defined shortcut layer: a small
// SQLite-backed store of shortcut→expansion pairs, indexed by a trie for
// prefix listing, consulted by auto-correct before its built-in
// dictionaries so a user's own expansions always win over a built-in
// correction for the same word.
package shortcuts

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/derekparker/trie"
)

const schema = `
CREATE TABLE IF NOT EXISTS shortcuts (
	word      TEXT PRIMARY KEY,
	expansion TEXT NOT NULL
);
`

// Store is a SQLite-backed table of user shortcuts, mirrored into an
// in-memory trie for O(prefix-length) prefix listing.
type Store struct {
	db *sql.DB

	mu    sync.RWMutex
	index *trie.Trie
}

// Open opens or creates the shortcut database at path and loads its
// contents into the prefix index.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open shortcut store %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate shortcut store %s: %w", path, err)
	}
	s := &Store{db: db, index: trie.New()}
	if err := s.reload(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) reload() error {
	rows, err := s.db.Query(`SELECT word, expansion FROM shortcuts`)
	if err != nil {
		return fmt.Errorf("load shortcuts: %w", err)
	}
	defer rows.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = trie.New()
	for rows.Next() {
		var word, expansion string
		if err := rows.Scan(&word, &expansion); err != nil {
			return fmt.Errorf("scan shortcut row: %w", err)
		}
		s.index.Add(word, expansion)
	}
	return rows.Err()
}

// Set inserts or updates a shortcut, persisting it and refreshing the
// in-memory index.
func (s *Store) Set(word, expansion string) error {
	word = strings.ToLower(word)
	if _, err := s.db.Exec(
		`INSERT INTO shortcuts(word, expansion) VALUES (?, ?)
		 ON CONFLICT(word) DO UPDATE SET expansion = excluded.expansion`,
		word, expansion,
	); err != nil {
		return fmt.Errorf("set shortcut %q: %w", word, err)
	}
	s.mu.Lock()
	s.index.Add(word, expansion)
	s.mu.Unlock()
	return nil
}

// Remove deletes a shortcut.
func (s *Store) Remove(word string) error {
	word = strings.ToLower(word)
	if _, err := s.db.Exec(`DELETE FROM shortcuts WHERE word = ?`, word); err != nil {
		return fmt.Errorf("remove shortcut %q: %w", word, err)
	}
	return s.reload()
}

// Lookup implements autocorrect.ShortcutLookup: it satisfies an exact
// (not prefix) match against the shortcut table.
func (s *Store) Lookup(word string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	node, ok := s.index.Find(strings.ToLower(word))
	if !ok {
		return "", false
	}
	meta := node.Meta()
	expansion, ok := meta.(string)
	return expansion, ok
}

// PrefixSearch lists every shortcut word beginning with prefix, for a
// host's "shortcuts list-prefix" command.
func (s *Store) PrefixSearch(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.PrefixSearch(strings.ToLower(prefix))
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
