package rank

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/pkg/errcode"
)

// ErrSchema is returned for unusable lists of rank codes.
var ErrSchema = errors.New("invalid rank schema")

func SchemaError(codes []string, reason string) error {
	msg := "Cannot use ranks <em>%s</em>: %s"
	joined := strings.Join(codes, ",")
	vars := []any{joined, reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RankSchemaError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s '%s': %w",
			fn.Name(), reason, joined, ErrSchema),
	}
}
