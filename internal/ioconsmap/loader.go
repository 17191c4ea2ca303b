// Package ioconsmap reads consensus map files and cleans them into
// consmap.Map. Optionally every name is checked by gnparser with a pool of
// concurrent workers, and the outcomes are cached on disk.
package ioconsmap

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnt2t/pkg/config"
	"github.com/gnames/gnt2t/pkg/consmap"
	"github.com/gnames/gnt2t/pkg/parserpool"
	"github.com/gnames/gnt2t/pkg/rank"
	"golang.org/x/sync/errgroup"
)

// Loader reads consensus maps according to Loader and Decorate settings
// of the configuration.
type Loader struct {
	cfg      *config.Config
	cacheDir      string
	progress      bool
	requirePrefix bool
}

// Option configures a Loader.
type Option func(*Loader)

// OptProgress shows a progress bar while names are checked.
func OptProgress(b bool) Option {
	return func(l *Loader) {
		l.progress = b
	}
}

// OptCacheDir sets a directory of the names cache. An empty value
// disables the cache.
func OptCacheDir(dir string) Option {
	return func(l *Loader) {
		l.cacheDir = dir
	}
}

// OptRequirePrefix makes names without rank prefixes an error when
// prefixes are not appended. It is on by default, since decorated names
// must carry prefixes.
func OptRequirePrefix(b bool) Option {
	return func(l *Loader) {
		l.requirePrefix = b
	}
}

// New creates a Loader. By default the names cache is located in the
// cache directory of the user.
func New(cfg *config.Config, opts ...Option) *Loader {
	res := &Loader{cfg: cfg, requirePrefix: true}
	if cfg.HomeDir != "" {
		res.cacheDir = config.NameCacheDir(cfg.HomeDir)
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Load reads and cleans a consensus map file. It returns the rank schema
// used for cleaning, which is taken from the first line when rank
// detection is enabled.
func (l *Loader) Load(
	ctx context.Context,
	path string,
) (*rank.Schema, *consmap.Map, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, nil, err
	}
	if len(lines) == 0 {
		return nil, nil, EmptyMapError(path)
	}
	return l.Parse(ctx, lines)
}

// Parse cleans lines of a consensus map.
func (l *Loader) Parse(
	ctx context.Context,
	lines []string,
) (*rank.Schema, *consmap.Map, error) {
	s, err := l.schema(lines)
	if err != nil {
		return nil, nil, err
	}

	lc := l.cfg.Loader
	opts := []consmap.Option{
		consmap.OptAppendRank(lc.AppendRank),
		consmap.OptCheckBad(lc.CheckBad),
		consmap.OptCheckMinInform(lc.CheckMinInform),
		consmap.OptStrict(lc.StrictRanks),
		consmap.OptRequirePrefix(l.requirePrefix),
	}

	if lc.CheckParsed {
		usable, err := l.checkNames(ctx, lines)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, consmap.OptNameFilter(func(name string) bool {
			return usable[name]
		}))
	}

	cleaner := consmap.NewCleaner(s, opts...)
	res := consmap.NewMap()
	for _, line := range lines {
		id, names, err := cleaner.ParseLine(line)
		if err != nil {
			return nil, nil, err
		}
		res.Add(id, names)
	}
	slog.Info("Consensus map is loaded",
		"tips", humanize.Comma(int64(res.Len())),
		"ranks", strings.Join(s.Codes(), ","),
	)
	return s, res, nil
}

func (l *Loader) schema(lines []string) (*rank.Schema, error) {
	if l.cfg.Loader.DetectRanks {
		return consmap.DetectSchema(lines[0])
	}
	return rank.New(l.cfg.Decorate.Ranks)
}

// ReadLines returns non-empty lines of a file. Lines that start with '#'
// are comments.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, OpenMapError(path, err)
	}
	defer f.Close()

	var res []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res = append(res, line)
	}
	if err = sc.Err(); err != nil {
		return nil, OpenMapError(path, err)
	}
	return res, nil
}

// uniqueNames collects distinct raw names that may survive cleaning.
func uniqueNames(lines []string) []string {
	seen := make(map[string]struct{})
	var res []string
	for _, line := range lines {
		_, names, err := consmap.SplitLine(line)
		if err != nil {
			continue
		}
		for _, v := range names {
			if v == "" || v == "None" || rank.IsPlaceholder(v) {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			res = append(res, v)
		}
	}
	return res
}

type nameCheck struct {
	name   string
	usable bool
}

// checkNames runs names through gnparser using JobsNumber workers.
func (l *Loader) checkNames(
	ctx context.Context,
	lines []string,
) (map[string]bool, error) {
	start := time.Now()
	names := uniqueNames(lines)

	var cache *nameCache
	var err error
	if l.cacheDir != "" {
		if cache, err = openNameCache(l.cacheDir); err != nil {
			return nil, err
		}
		defer cache.close()
	}

	pool := parserpool.NewPool(l.cfg.JobsNumber, nomcode.Botanical)
	defer pool.Close()

	chIn := make(chan string)
	chOut := make(chan nameCheck)

	g, gctx := errgroup.WithContext(ctx)
	var wg sync.WaitGroup

	for range max(l.cfg.JobsNumber, 1) {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return checkWorker(gctx, pool, cache, chIn, chOut)
		})
	}

	res := make(map[string]bool, len(names))
	g.Go(func() error {
		return l.collect(len(names), chOut, res)
	})

	go func() {
		wg.Wait()
		close(chOut)
	}()

	g.Go(func() error {
		defer close(chIn)
		for _, v := range names {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case chIn <- v:
			}
		}
		return nil
	})

	if err = g.Wait(); err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, err
	}

	var rejected int
	for _, ok := range res {
		if !ok {
			rejected++
		}
	}
	slog.Info("Names are checked",
		"names", humanize.Comma(int64(len(names))),
		"rejected", humanize.Comma(int64(rejected)),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return res, nil
}

func checkWorker(
	ctx context.Context,
	pool parserpool.Pool,
	cache *nameCache,
	chIn <-chan string,
	chOut chan<- nameCheck,
) error {
	for name := range chIn {
		usable, err := check(pool, cache, name)
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case chOut <- nameCheck{name: name, usable: usable}:
		}
	}
	return nil
}

func check(pool parserpool.Pool, cache *nameCache, name string) (bool, error) {
	key := parserpool.Prepare(name)
	if cache != nil {
		v, ok, err := cache.get(key)
		if err != nil {
			return false, NameCacheError(cache.dir, err)
		}
		if ok {
			return v.Usable, nil
		}
	}

	p := pool.Parse(name)
	v := verdict{Usable: parserpool.Usable(p)}
	if p.Canonical != nil {
		v.Canonical = p.Canonical.Simple
	}
	if cache != nil {
		if err := cache.set(key, v); err != nil {
			return false, NameCacheError(cache.dir, err)
		}
	}
	return v.Usable, nil
}

func (l *Loader) collect(
	total int,
	chOut <-chan nameCheck,
	res map[string]bool,
) error {
	var bar *pb.ProgressBar
	if l.progress {
		bar = pb.Full.Start(total)
		bar.Set("prefix", "Checking names: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	for v := range chOut {
		res[v.name] = v.usable
		if bar != nil {
			bar.Increment()
		}
	}
	return nil
}
