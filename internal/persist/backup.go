package persist

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gradekeep/gradekeep/internal/record"
)

// ErrNoCurrentFile reports a SAVE or BACKUP with no established
// database file: nothing has been opened or saved yet.
var ErrNoCurrentFile = errors.New("no current database file")

// backupTimeLayout is the timestamp embedded in backup file names,
// e.g. records.bak-20260830-153012.txt.
const backupTimeLayout = "20060102-150405"

// Backup writes a timestamped copy of the current database beside it:
// `<stem>.bak-YYYYMMDD-HHMMSS.txt`, where stem is the current file
// name without directory or extension. Returns the backup path.
func Backup(session *Session, clock Clock, records []record.Record) (string, error) {
	current := session.CurrentFile()
	if current == "" {
		return "", ErrNoCurrentFile
	}

	stem := fileStem(current)
	name := stem + ".bak-" + clock.Now().Format(backupTimeLayout) + ".txt"
	path := filepath.Join(filepath.Dir(current), name)

	if err := SaveTSV(path, records); err != nil {
		return "", err
	}
	return path, nil
}

// fileStem extracts the base file name without its extension:
// "/a/b/db.txt" -> "db".
func fileStem(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
