// Package wsx writes encoded sweeps into the SQLite container read by the
// Chanalyzer viewer.
package wsx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/grovetools/spec2wsx/internal/capture"

	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver used for container files.
const DriverName = "sqlite"

var errNotStarted = errors.New("wsx: schema not created")

// Writer persists one capture. All statements run in a single transaction
// that Finalize commits.
type Writer struct {
	db     *sql.DB
	tx     *sql.Tx
	path   string
	sweeps int
}

// Create removes any existing file at path and opens a new container.
func Create(ctx context.Context, path string) (*Writer, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("remove existing container: %w", err)
	}
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open container: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open container: %w", err)
	}
	w := NewWriter(db)
	w.path = path
	return w, nil
}

// NewWriter wraps an open database.
func NewWriter(db *sql.DB) *Writer {
	return &Writer{db: db}
}

// Sweeps returns the number of sweeps inserted so far.
func (w *Writer) Sweeps() int { return w.sweeps }

// CreateSchema starts the transaction and creates every container table.
func (w *Writer) CreateSchema(ctx context.Context) error {
	if w.tx != nil {
		return errors.New("wsx: schema already created")
	}
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	w.tx = tx
	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// InsertDeviceHeader writes the version, device and setting rows.
func (w *Writer) InsertDeviceHeader(ctx context.Context, h capture.Header) error {
	if w.tx == nil {
		return errNotStarted
	}
	steps := []struct {
		name  string
		query string
		args  []any
	}{
		{"db_version", insertDBVersion, nil},
		{"device", insertDevice, []any{h.DeviceTypeID, h.Serial}},
		{"device_setting", insertSetting, nil},
		{"l_device_setting_purpose", insertPurpose, nil},
		{"l_device_type", insertType, []any{h.DeviceTypeID, h.Device, amplitudeOffset, amplitudeResolution, maxRSSI}},
		{"setting", insertBand, []any{BandName, BandStartKHz, h.FrequencyResolutionKHz, h.SlotsPerSweep()}},
	}
	for _, s := range steps {
		if _, err := w.tx.ExecContext(ctx, s.query, s.args...); err != nil {
			return fmt.Errorf("insert %s: %w", s.name, err)
		}
	}
	return nil
}

// InsertSweep writes one sweep. data excludes the timestamp.
func (w *Writer) InsertSweep(ctx context.Context, timestampMs int64, data []byte) error {
	if w.tx == nil {
		return errNotStarted
	}
	if _, err := w.tx.ExecContext(ctx, insertSweep, timestampMs, data); err != nil {
		return fmt.Errorf("insert sweep %d: %w", w.sweeps, err)
	}
	w.sweeps++
	return nil
}

// Finalize commits the transaction and closes the container.
func (w *Writer) Finalize() error {
	if w.tx == nil {
		return errNotStarted
	}
	err := w.tx.Commit()
	w.tx = nil
	if err != nil {
		w.db.Close()
		return fmt.Errorf("commit: %w", err)
	}
	return w.db.Close()
}

// Abort rolls back, closes the container and removes the file created by
// Create so no partial container is left behind.
func (w *Writer) Abort() error {
	var errs []error
	if w.tx != nil {
		if err := w.tx.Rollback(); err != nil {
			errs = append(errs, fmt.Errorf("rollback: %w", err))
		}
		w.tx = nil
	}
	if err := w.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close: %w", err))
	}
	if w.path != "" {
		if err := os.Remove(w.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("remove partial container: %w", err))
		}
	}
	return errors.Join(errs...)
}
