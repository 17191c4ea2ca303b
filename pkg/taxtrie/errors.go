package taxtrie

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/pkg/errcode"
)

// ErrLookup is returned when a name is absent from the trie.
var ErrLookup = errors.New("name is not in taxonomy trie")

func LookupError(name string) error {
	msg := "Name <em>%s</em> is not found in input taxonomy"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TrieLookupError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: '%s': %w", fn.Name(), name, ErrLookup),
	}
}
