package cmd

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/pkg/errcode"
)

var (
	// ErrMissingInput is returned when a required flag is empty.
	ErrMissingInput = errors.New("required input is missing")

	// ErrInconsistentPaths is returned in strict mode when decorated tips
	// have ranks out of order along their paths.
	ErrInconsistentPaths = errors.New("tips with inconsistent rank paths")

	// ErrUnknownFormat is returned for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")
)

func MissingInputError(flag string) error {
	msg := "Required flag <em>--%s</em> is not set"
	vars := []any{flag}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MissingInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: --%s: %w", fn.Name(), flag, ErrMissingInput),
	}
}

func InconsistentPathsError(num int) error {
	msg := "Found <em>%d</em> tips with inconsistent rank paths"
	vars := []any{num}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InconsistentPathsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %d tips: %w", fn.Name(), num, ErrInconsistentPaths),
	}
}

func WriteOutputError(path string, err error) error {
	if path == "" {
		path = "STDOUT"
	}
	msg := "Cannot write output to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s: %w", fn.Name(), path, err),
	}
}

func UnknownFormatError(format string) error {
	msg := "Unknown output format <em>%s</em>, use tsv or json"
	vars := []any{format}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: '%s': %w", fn.Name(), format, ErrUnknownFormat),
	}
}
