package Loader

import (
	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
)

// Store is a Source over the keys of a pebble database that start with Prefix.
// Words come out without the prefix, sorted and without repeats.
type Store struct {
	DB     *pebble.DB
	Prefix string
}

// Open a pebble database at dir, creating it when missing.
func Open(dir string, opts *pebble.Options) (*pebble.DB, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}
	db, err := pebble.Open(dir, opts)
	return db, errors.Wrapf(err, "open store %s", dir)
}

// upperBound is the smallest key greater than every key starting with prefix;
// nil when there is none.
func upperBound(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

func (u Store) Each(f func(string) bool) error {
	prefix := []byte(u.Prefix)
	iter, err := u.DB.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: upperBound(prefix),
	})
	if err != nil {
		return errors.Wrap(err, "open store iterator")
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		if !f(string(iter.Key()[len(prefix):])) {
			break
		}
	}
	return errors.Wrap(iter.Error(), "scan store")
}

// Import writes every word of src into db as a key under prefix in one batch,
// and returns how many words it read. Words already there are kept once.
func Import(db *pebble.DB, src Source, prefix string) (n int, err error) {
	b := db.NewBatch()
	defer b.Close()
	if serr := src.Each(func(w string) bool {
		err = b.Set([]byte(prefix+w), nil, nil)
		n++
		return err == nil
	}); serr != nil {
		return n, serr
	}
	if err != nil {
		return n, errors.Wrap(err, "import")
	}
	return n, errors.Wrap(b.Commit(pebble.Sync), "commit import")
}
