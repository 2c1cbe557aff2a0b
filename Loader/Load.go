package Loader

import (
	"log/slog"
	"strings"
	"time"

	"github.com/g-m-twostay/go-rbtree/Trees"
	"github.com/pkg/errors"
)

// Target is a tree of words that can check itself.
type Target interface {
	Trees.Tree[string]
	VerifyTree() error
}

type Options struct {
	// Fold lower cases every word before inserting it.
	Fold bool
	// Limit stops after that many words are read; 0 reads all.
	Limit int
	// VerifyEach checks the whole tree after every insertion.
	VerifyEach bool
	// Logger receives an Info record every Progress words read.
	Logger   *slog.Logger
	Progress int
}

// Stats of one Load.
type Stats struct {
	Read, Inserted, Duplicates int
	Elapsed                    time.Duration
}

// PerNode is the mean time spent per inserted word.
func (s Stats) PerNode() time.Duration {
	if s.Inserted == 0 {
		return 0
	}
	return s.Elapsed / time.Duration(s.Inserted)
}

func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("read", s.Read),
		slog.Int("inserted", s.Inserted),
		slog.Int("duplicates", s.Duplicates),
		slog.Duration("elapsed", s.Elapsed),
		slog.Duration("per_node", s.PerNode()),
	)
}

// Load inserts every word of src into tree. When VerifyEach is set, the first
// violation stops the load and is returned together with the stats so far.
func Load(tree Target, src Source, opts Options) (s Stats, err error) {
	start := time.Now()
	serr := src.Each(func(w string) bool {
		if opts.Fold {
			w = strings.ToLower(w)
		}
		s.Read++
		if tree.Insert(w) {
			s.Inserted++
		} else {
			s.Duplicates++
		}
		if opts.VerifyEach {
			if err = tree.VerifyTree(); err != nil {
				err = errors.Wrapf(err, "after inserting %q", w)
				return false
			}
		}
		if opts.Logger != nil && opts.Progress > 0 && s.Read%opts.Progress == 0 {
			opts.Logger.Info("progress", "stats", s)
		}
		return opts.Limit <= 0 || s.Read < opts.Limit
	})
	s.Elapsed = time.Since(start)
	if err != nil {
		return s, err
	}
	return s, errors.Wrap(serr, "load")
}
