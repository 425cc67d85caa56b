// Package persist reads and writes the textual record formats: the
// TSV database file, CSV import/export, the SQL dump, and timestamped
// backups. It owns no record state; callers pass snapshots in and get
// parsed records out.
package persist

import "time"

// Clock supplies the current time. Backup file names embed it, so
// tests substitute a fixed clock for deterministic output.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock used outside tests.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Session remembers the current database file across commands, so that
// SAVE with no argument and BACKUP know where to write.
type Session struct {
	currentFile string
}

// CurrentFile returns the last opened or saved database file name, or
// "" when none has been established yet.
func (s *Session) CurrentFile() string {
	return s.currentFile
}

// SetCurrentFile records the database file name for later SAVE/BACKUP.
func (s *Session) SetCurrentFile(path string) {
	s.currentFile = path
}
