// Package parserpool provides a pool of gnparser instances that check
// whether taxon names of consensus maps are scientific names.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"regexp"
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
	"github.com/gnames/gnt2t/pkg/rank"
)

// Pool parses names concurrently.
type Pool interface {
	// Parse parses a name string. The rank prefix and polyphyletic tags
	// are removed before parsing. Safe for concurrent use.
	Parse(name string) parsed.Parsed

	// Check is true for names that can be used as taxon labels.
	Check(name string) bool

	// Close shuts down the pool. After calling Close, the pool should not
	// be used.
	Close()
}

type pool struct {
	ch chan gnparser.GNparser
}

// NewPool creates a pool of parsers for a nomenclatural code. If jobsNum
// is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int, code nomcode.Code) Pool {
	if jobsNum <= 0 {
		jobsNum = runtime.NumCPU()
	}
	cfg := gnparser.NewConfig(gnparser.OptCode(code))
	return &pool{ch: gnparser.NewPool(cfg, jobsNum)}
}

var polyTagRe = regexp.MustCompile(`_[A-Z]+\b`)

// Prepare removes the rank prefix and polyphyletic tags, so
// 's__Bacillus_A subtilis_B' becomes 'Bacillus subtilis'.
func Prepare(name string) string {
	return polyTagRe.ReplaceAllString(rank.Bare(name), "")
}

// Usable is true for parsed names that are not viruses.
func Usable(p parsed.Parsed) bool {
	return p.Parsed && !p.Virus
}

func (p *pool) Parse(name string) parsed.Parsed {
	parser := <-p.ch
	res := parser.ParseName(Prepare(name))
	p.ch <- parser
	return res
}

func (p *pool) Check(name string) bool {
	return Usable(p.Parse(name))
}

func (p *pool) Close() {
	if p.ch == nil {
		return
	}
	close(p.ch)
	for range p.ch {
	}
	p.ch = nil
}
