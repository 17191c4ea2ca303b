package consmap

import (
	"strings"

	"github.com/gnames/gnt2t/pkg/rank"
)

// BadNames are case-insensitive fragments of uninformative names.
var BadNames = []string{
	"environmental sample", "uncultured", "UNNAMEABLE", "unclassified",
	"unidentified", "cluster", "isolate", "environmental samples",
}

var badNamesLow = func() []string {
	res := make([]string, len(BadNames))
	for i, v := range BadNames {
		res[i] = strings.ToLower(v)
	}
	return res
}()

// HasBadName checks if a name contains any of BadNames.
func HasBadName(name string) bool {
	name = strings.ToLower(name)
	for _, v := range badNamesLow {
		if strings.Contains(name, v) {
			return true
		}
	}
	return false
}

// NameFilter decides if a non-empty name is kept.
type NameFilter func(name string) bool

// Cleaner converts raw consensus map lines into cleaned rows.
type Cleaner struct {
	schema         *rank.Schema
	appendRank     bool
	checkBad       bool
	checkMinInform bool
	strict         bool
	requirePrefix  bool
	filter         NameFilter
}

// Option configures a Cleaner.
type Option func(*Cleaner)

// OptAppendRank adds rank prefixes to names and turns absent names into
// placeholders like 'g__'.
func OptAppendRank(b bool) Option {
	return func(c *Cleaner) {
		c.appendRank = b
	}
}

// OptCheckBad removes names that contain BadNames.
func OptCheckBad(b bool) Option {
	return func(c *Cleaner) {
		c.checkBad = b
	}
}

// OptCheckMinInform turns a row into an all-absent one when the name
// below the top rank is absent.
func OptCheckMinInform(b bool) Option {
	return func(c *Cleaner) {
		c.checkMinInform = b
	}
}

// OptStrict makes rows with a wrong number of ranks an error. Otherwise
// such rows become all-absent.
func OptStrict(b bool) Option {
	return func(c *Cleaner) {
		c.strict = b
	}
}

// OptRequirePrefix makes names without the prefix of their rank an error.
// It has no effect when prefixes are appended.
func OptRequirePrefix(b bool) Option {
	return func(c *Cleaner) {
		c.requirePrefix = b
	}
}

// OptNameFilter sets an additional name check. Rejected names become
// absent.
func OptNameFilter(f NameFilter) Option {
	return func(c *Cleaner) {
		c.filter = f
	}
}

// NewCleaner creates a Cleaner for a rank schema.
func NewCleaner(s *rank.Schema, opts ...Option) *Cleaner {
	res := &Cleaner{
		schema:         s,
		checkBad:       true,
		checkMinInform: true,
		strict:         true,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Schema returns the rank schema of the Cleaner.
func (c *Cleaner) Schema() *rank.Schema {
	return c.schema
}

// SplitLine separates a line into a tip id and raw trimmed names.
func SplitLine(line string) (string, []string, error) {
	line = strings.TrimSpace(line)
	fields := strings.Split(line, "\t")
	if len(fields) != 2 {
		return "", nil, FormatError(line)
	}
	id := strings.TrimSpace(fields[0])
	names := strings.Split(fields[1], ";")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return id, names, nil
}

// ParseLine splits and cleans one consensus map line.
func (c *Cleaner) ParseLine(line string) (string, []string, error) {
	id, names, err := SplitLine(line)
	if err != nil {
		return "", nil, err
	}
	names, err = c.Clean(id, names)
	if err != nil {
		return "", nil, err
	}
	return id, names, nil
}

// Clean applies cleaning rules to raw names of a tip.
func (c *Cleaner) Clean(id string, names []string) ([]string, error) {
	n := c.schema.Len()
	if len(names) != n {
		if c.strict {
			return nil, ArityError(id, n, len(names))
		}
		names = make([]string, n)
	} else {
		names = append([]string(nil), names...)
	}

	for i, v := range names {
		if v == "None" || rank.IsPlaceholder(v) {
			names[i] = ""
		}
	}

	if c.checkMinInform && n > 1 && names[1] == "" {
		names = make([]string, n)
	}

	for i, v := range names {
		if v == "" {
			continue
		}
		if c.checkBad && HasBadName(v) {
			names[i] = ""
			continue
		}
		if c.filter != nil && !c.filter(v) {
			names[i] = ""
		}
	}

	if c.requirePrefix && !c.appendRank {
		for i, v := range names {
			code := c.schema.Code(i)
			if v != "" && !strings.HasPrefix(v, code+rank.Sep) {
				return nil, PrefixError(id, v, code)
			}
		}
	}

	if c.appendRank {
		for i, v := range names {
			code := c.schema.Code(i)
			switch {
			case v == "":
				names[i] = c.schema.Placeholder(i)
			case strings.HasPrefix(v, code+rank.Sep):
			default:
				names[i] = c.schema.Prefixed(i, v)
			}
		}
	}
	return names, nil
}

// DetectSchema builds a rank schema from the first characters of names
// in a consensus map line.
func DetectSchema(line string) (*rank.Schema, error) {
	_, names, err := SplitLine(line)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(names))
	for _, v := range names {
		if v == "" {
			return nil, FormatError(line)
		}
		codes = append(codes, v[:1])
	}
	return rank.New(codes)
}
