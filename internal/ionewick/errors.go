package ionewick

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/pkg/errcode"
)

// ErrEmptyTree is returned when a Newick input has no nodes.
var ErrEmptyTree = errors.New("empty tree")

func ParseError(path string, err error) error {
	msg := "Cannot read tree from <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NewickParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: tree %s: %w", fn.Name(), path, err),
	}
}

func EmptyTreeError() error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NewickEmptyError,
		Msg:  "Tree has no nodes",
		Err:  fmt.Errorf("from %s: %w", fn.Name(), ErrEmptyTree),
	}
}

func WriteError(path string, err error) error {
	msg := "Cannot write tree to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: tree %s: %w", fn.Name(), path, err),
	}
}
