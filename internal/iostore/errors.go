package iostore

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/pkg/errcode"
)

var (
	// ErrBackend is returned for an unknown archive backend.
	ErrBackend = errors.New("unknown archive backend")

	// ErrNotConnected is returned when the archive has no database
	// connection.
	ErrNotConnected = errors.New("archive is not connected")
)

func BackendError(name string) error {
	msg := "Archive backend <em>%s</em> is not supported"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArchiveBackendError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: '%s': %w", fn.Name(), name, ErrBackend),
	}
}

func NotConnectedError() error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Archive operation attempted without database connection",
		Err:  fmt.Errorf("from %s: %w", fn.Name(), ErrNotConnected),
	}
}

func OpenError(path string, err error) error {
	msg := "Cannot open archive <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: archive %s: %w", fn.Name(), path, err),
	}
}

func SchemaError(table string, err error) error {
	msg := "Cannot create archive table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArchiveSchemaError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: table %s: %w", fn.Name(), table, err),
	}
}

func SaveError(runID string, err error) error {
	msg := "Cannot archive run <em>%s</em>"
	vars := []any{runID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArchiveSaveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: run %s: %w", fn.Name(), runID, err),
	}
}
