package decor

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/pkg/errcode"
)

var (
	// ErrUnknownRank is returned when a display name has no known rank
	// prefix.
	ErrUnknownRank = errors.New("unknown rank prefix")

	// ErrBinomialConflict is returned when a species and its genus carry
	// different polyphyletic tags.
	ErrBinomialConflict = errors.New("species conflicts with genus")

	// ErrUnknownScore is returned for an unsupported score name.
	ErrUnknownScore = errors.New("unknown score function")
)

// UnknownRankError reports a name that cannot be placed into a lineage.
func UnknownRankError(name, tipID string, lineage []string) error {
	msg := "Unknown rank: <em>%s</em>\n\tA tip ID from the clade: %s\n" +
		"\tCurrent lineage in tree: %s"
	vars := []any{name, tipID, strings.Join(lineage, NameSep)}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownRankPrefixError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: name '%s', tip '%s': %w",
			fn.Name(), name, tipID, ErrUnknownRank),
	}
}

func BinomialConflictError(genus, species string) error {
	msg := "Species <em>%s</em> does not agree with genus <em>%s</em>"
	vars := []any{species, genus}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BinomialConflictError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: '%s' under '%s': %w",
			fn.Name(), species, genus, ErrBinomialConflict),
	}
}

func UnknownScoreError(name string) error {
	msg := "Score function <em>%s</em> is not supported"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownScoreError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: '%s': %w", fn.Name(), name, ErrUnknownScore),
	}
}
