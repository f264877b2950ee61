// Package convert runs a capture through the transcoder and into a container.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/grovetools/spec2wsx/internal/capture"
)

// ContainerWriter persists a transcoded capture.
type ContainerWriter interface {
	CreateSchema(ctx context.Context) error
	InsertDeviceHeader(ctx context.Context, h capture.Header) error
	InsertSweep(ctx context.Context, timestampMs int64, data []byte) error
	Finalize() error
	Abort() error
}

// Result is the outcome of a successful conversion.
type Result struct {
	Header capture.Header  `json:"header"`
	Report *capture.Report `json:"report"`
	Output string          `json:"output,omitempty"`
}

// Transcode is the read-only half of Run.
func Transcode(in io.Reader, filename string, opts capture.Options) (*capture.Table, *capture.Report, error) {
	table, report, err := capture.Transcode(in, filename, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("transcode %s: %w", filename, err)
	}
	return table, report, nil
}

// Run transcodes the whole capture before opening the container, so a
// malformed capture never produces output. open is called only once the
// capture converted.
func Run(ctx context.Context, in io.Reader, filename string, opts capture.Options, open func(ctx context.Context) (ContainerWriter, error)) (*Result, error) {
	table, report, err := Transcode(in, filename, opts)
	if err != nil {
		return nil, err
	}

	w, err := open(ctx)
	if err != nil {
		return nil, err
	}
	if err := Write(ctx, w, table); err != nil {
		if abortErr := w.Abort(); abortErr != nil {
			err = errors.Join(err, abortErr)
		}
		return nil, err
	}
	return &Result{Header: table.Header, Report: report}, nil
}

// Write stores table through w and finalizes it. The caller aborts w on
// error.
func Write(ctx context.Context, w ContainerWriter, table *capture.Table) error {
	if err := w.CreateSchema(ctx); err != nil {
		return err
	}
	if err := w.InsertDeviceHeader(ctx, table.Header); err != nil {
		return err
	}
	for i := 0; i < table.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := table.Row(i)
		if err := w.InsertSweep(ctx, row.Timestamp, row.Data); err != nil {
			return err
		}
	}
	return w.Finalize()
}

// OutputPath derives the container path from the capture path.
func OutputPath(input string) string {
	if strings.HasSuffix(input, ".spec") {
		return strings.TrimSuffix(input, ".spec") + ".wsx"
	}
	return input + ".wsx"
}
