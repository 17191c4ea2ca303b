package tipindex

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/pkg/errcode"
)

var (
	// ErrNonUnique is returned when two clades cover the same tips.
	ErrNonUnique = errors.New("cannot construct unique mapping")

	// ErrUnnamed is returned for a clade without a name.
	ErrUnnamed = errors.New("clade is lacking a name")
)

func NonUniqueError(first, second string) error {
	msg := "Clades <em>%s</em> and <em>%s</em> cover the same tips"
	vars := []any{first, second}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NonUniqueTipSetError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: '%s' and '%s': %w",
			fn.Name(), first, second, ErrNonUnique),
	}
}

func UnnamedError(tips string) error {
	msg := "Clade with tips <em>%s</em> has no name"
	vars := []any{tips}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnnamedTipSetError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: tips '%s': %w", fn.Name(), tips, ErrUnnamed),
	}
}
