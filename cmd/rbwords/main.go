// Command rbwords loads words into a red-black tree, checks it, and reports
// how long that took and how deep the tree grew. It can also draw the tree.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/g-m-twostay/go-rbtree/Loader"
	"github.com/g-m-twostay/go-rbtree/Render"
	"github.com/g-m-twostay/go-rbtree/Trees"
	"github.com/pkg/errors"
)

// Config holds the command line settings.
type Config struct {
	Source   string // fixed, dict, sample or pebble
	Dict     string
	N        int
	Seed     int64
	Pebble   string
	Import   bool
	Prefix   string
	Fold     bool
	Verify   bool
	DOT, PNG string
	Dump     string // none, text or levels
	Trace    bool
}

func DefaultConfig() Config {
	return Config{
		Source: "fixed",
		Dict:   "/usr/share/dict/words",
		N:      1000,
		Seed:   1,
		Prefix: "words/",
		Dump:   "none",
	}
}

func parse(args []string) (Config, error) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("rbwords", flag.ContinueOnError)
	fs.StringVar(&cfg.Source, "source", cfg.Source, "where words come from: fixed, dict, sample or pebble")
	fs.StringVar(&cfg.Dict, "dict", cfg.Dict, "dictionary file, one word per line")
	fs.IntVar(&cfg.N, "n", cfg.N, "words to sample with -source sample")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "sampling seed")
	fs.StringVar(&cfg.Pebble, "pebble", cfg.Pebble, "pebble store directory")
	fs.BoolVar(&cfg.Import, "import", cfg.Import, "copy the dictionary into the pebble store first")
	fs.StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "key prefix of words in the pebble store")
	fs.BoolVar(&cfg.Fold, "fold", cfg.Fold, "lower case words before inserting")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "verify the tree after every insertion")
	fs.StringVar(&cfg.DOT, "dot", cfg.DOT, "write the tree as graphviz DOT to this file")
	fs.StringVar(&cfg.PNG, "png", cfg.PNG, "render the tree to this PNG file with dot")
	fs.StringVar(&cfg.Dump, "dump", cfg.Dump, "print the tree: none, text or levels")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "log every structural change of the tree")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.Import && cfg.Pebble == "" {
		return cfg, errors.New("-import needs -pebble")
	}
	if cfg.Source == "pebble" && cfg.Pebble == "" {
		return cfg, errors.New("-source pebble needs -pebble")
	}
	return cfg, nil
}

// source opens the words named by cfg. The returned function releases them.
func source(cfg Config, log *slog.Logger) (Loader.Source, func(), error) {
	nop := func() {}
	switch cfg.Source {
	case "fixed":
		return Loader.DefaultWords, nop, nil
	case "dict":
		return Loader.Dictionary{Path: cfg.Dict}, nop, nil
	case "sample":
		return Loader.Sampler{Path: cfg.Dict, N: cfg.N, Rand: rand.New(rand.NewSource(cfg.Seed)), Distinct: true}, nop, nil
	case "pebble":
		db, err := Loader.Open(cfg.Pebble, nil)
		if err != nil {
			return nil, nop, err
		}
		if cfg.Import {
			n, err := Loader.Import(db, Loader.Dictionary{Path: cfg.Dict}, cfg.Prefix)
			if err != nil {
				db.Close()
				return nil, nop, err
			}
			log.Info("imported", "words", n, "store", cfg.Pebble)
		}
		return Loader.Store{DB: db, Prefix: cfg.Prefix}, func() { db.Close() }, nil
	default:
		return nil, nop, errors.Errorf("unknown source %q", cfg.Source)
	}
}

func run(ctx context.Context, cfg Config, stdout io.Writer, log *slog.Logger) error {
	src, closeSrc, err := source(cfg, log)
	if err != nil {
		return err
	}
	defer closeSrc()

	tree := Trees.NewOrdered[string, uint32](Trees.Config{Logger: log, Trace: cfg.Trace}, 0)
	stats, err := Loader.Load(tree, src, Loader.Options{
		Fold:       cfg.Fold,
		VerifyEach: cfg.Verify,
		Logger:     log,
		Progress:   100000,
	})
	if err != nil {
		return err
	}
	if err := tree.VerifyTree(); err != nil {
		return err
	}
	lo, hi := tree.MinMaxDepth()
	log.Info("loaded", "stats", stats, "min_depth", lo, "max_depth", hi)
	fmt.Fprintf(stdout, "read %d, inserted %d, duplicates %d in %v (%v per node)\n",
		stats.Read, stats.Inserted, stats.Duplicates, stats.Elapsed, stats.PerNode())
	fmt.Fprintf(stdout, "leaf depth: min %d, max %d\n", lo, hi)

	switch cfg.Dump {
	case "text":
		err = Render.Text[string, uint32](stdout, tree)
	case "levels":
		err = Render.Levels[string, uint32](stdout, tree)
	case "none", "":
	default:
		err = errors.Errorf("unknown dump %q", cfg.Dump)
	}
	if err != nil {
		return err
	}

	if cfg.DOT == "" && cfg.PNG == "" {
		return nil
	}
	l := Render.DOT[string, uint32](tree, nil)
	if cfg.DOT != "" {
		if err := os.WriteFile(cfg.DOT, []byte(l.String()), 0o644); err != nil {
			return errors.Wrap(err, "write dot")
		}
		log.Info("wrote graph", "path", cfg.DOT, "nodes", l.Nodes, "placeholders", l.Placeholders)
	}
	if cfg.PNG != "" {
		if err := Render.PNG(ctx, l, cfg.PNG); err != nil {
			return err
		}
		log.Info("rendered graph", "path", cfg.PNG)
	}
	return nil
}

func main() {
	cfg, err := parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	level := slog.LevelInfo
	if cfg.Trace {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, cfg, os.Stdout, log); err != nil {
		log.Error("rbwords failed", "err", err)
		stop()
		os.Exit(1)
	}
}
