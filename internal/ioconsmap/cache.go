package ioconsmap

import (
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
)

// verdict keeps the outcome of a name check.
type verdict struct {
	Canonical string
	Usable    bool
}

// nameCache is a Badger key-value store of name checks. It lives in
// ~/.cache/gnt2t/names and survives between runs, because consensus maps
// of the same reference taxonomy share most of their names.
type nameCache struct {
	dir string
	db  *badger.DB
	enc gnfmt.GNgob
}

func openNameCache(dir string) (*nameCache, error) {
	if err := gnsys.MakeDir(dir); err != nil {
		return nil, NameCacheError(dir, err)
	}

	options := badger.DefaultOptions(dir)
	options.Logger = nil

	db, err := badger.Open(options)
	if err != nil {
		return nil, NameCacheError(dir, err)
	}
	slog.Debug("Name cache opened", "dir", dir)
	return &nameCache{dir: dir, db: db}, nil
}

func (c *nameCache) close() error {
	if c == nil || c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	if err != nil {
		return NameCacheError(c.dir, err)
	}
	return nil
}

func (c *nameCache) get(key string) (verdict, bool, error) {
	var res verdict
	var valBytes []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		valBytes, err = item.ValueCopy(nil)
		return err
	})
	if err != nil || valBytes == nil {
		return res, false, err
	}

	if err = c.enc.Decode(valBytes, &res); err != nil {
		return res, false, err
	}
	return res, true, nil
}

func (c *nameCache) set(key string, v verdict) error {
	valBytes, err := c.enc.Encode(v)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), valBytes)
	})
}
