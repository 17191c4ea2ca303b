package ioconsmap

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/pkg/errcode"
)

func OpenMapError(path string, err error) error {
	msg := "Cannot read consensus map <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}

func EmptyMapError(path string) error {
	msg := "Consensus map <em>%s</em> has no classifications"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConsensusMapEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: empty consensus map %s", fn.Name(), path),
	}
}

func NameCacheError(dir string, err error) error {
	msg := "Cannot use names cache at <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NameCacheError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: names cache %s: %w", fn.Name(), dir, err),
	}
}
