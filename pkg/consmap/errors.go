package consmap

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/pkg/errcode"
)

var (
	// ErrArity is returned when a row has a wrong number of ranks.
	ErrArity = errors.New("wrong number of ranks")

	// ErrFormat is returned when a line cannot be split into an id and
	// a classification.
	ErrFormat = errors.New("malformed consensus map line")

	// ErrPrefix is returned when a name does not start with the prefix of
	// its rank.
	ErrPrefix = errors.New("name without rank prefix")
)

func ArityError(id string, want, got int) error {
	msg := "Tip <em>%s</em> has %d ranks instead of %d"
	vars := []any{id, got, want}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConsensusMapArityError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: tip '%s' has %d ranks, want %d: %w",
			fn.Name(), id, got, want, ErrArity),
	}
}

func FormatError(line string) error {
	msg := "Cannot split consensus map line <em>%s</em>"
	vars := []any{line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConsensusMapFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: line '%s': %w", fn.Name(), line, ErrFormat),
	}
}

func PrefixError(id, name, code string) error {
	msg := "Tip <em>%s</em>: name <em>%s</em> does not start with '%s__'"
	vars := []any{id, name, code}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConsensusMapPrefixError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: tip '%s', name '%s', rank '%s': %w",
			fn.Name(), id, name, code, ErrPrefix),
	}
}
