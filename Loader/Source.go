// Package Loader feeds words into a tree: from a fixed list, a dictionary file,
// random samples of a dictionary file or a pebble store.
package Loader

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/cornelk/hashmap"
	"github.com/pkg/errors"
)

// Source yields words.
type Source interface {
	// Each calls f on every word in order until f returns false.
	Each(f func(string) bool) error
}

// Fixed is a Source over a list of words.
type Fixed []string

var DefaultWords = Fixed(strings.Fields("the quick brown fox jumps over the lazy dog"))

func (u Fixed) Each(f func(string) bool) error {
	for _, w := range u {
		if !f(w) {
			break
		}
	}
	return nil
}

// Dictionary is a Source reading one word per line from a file. Surrounding
// white space is trimmed and blank lines are skipped.
type Dictionary struct {
	Path string
}

func (u Dictionary) Each(f func(string) bool) error {
	file, err := os.Open(u.Path)
	if err != nil {
		return errors.Wrap(err, "open dictionary")
	}
	defer file.Close()
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" && !f(w) {
			return nil
		}
	}
	return errors.Wrapf(sc.Err(), "read %s", u.Path)
}

// Sampler is a Source drawing N words from random lines of a file: a byte
// offset is picked uniformly and moved back to the start of its line, so long
// lines are drawn more often. With Distinct, no line is drawn twice and fewer
// than N words come out when the file runs short of lines.
type Sampler struct {
	Path     string
	N        int
	Rand     *rand.Rand // nil seeds one from the clock
	Distinct bool
}

// chunk is how far lineStart reads back at a time.
const chunk = 256

// lineStart returns the offset of the first byte of the line holding off.
func lineStart(r io.ReaderAt, off int64) (int64, error) {
	var buf [chunk]byte
	for off > 0 {
		lo := max(0, off-chunk)
		n, err := r.ReadAt(buf[:off-lo], lo)
		if err != nil && err != io.EOF {
			return 0, err
		}
		for i := n - 1; i >= 0; i-- {
			if buf[i] == '\n' {
				return lo + int64(i) + 1, nil
			}
		}
		off = lo
	}
	return 0, nil
}

func (u Sampler) Each(f func(string) bool) error {
	file, err := os.Open(u.Path)
	if err != nil {
		return errors.Wrap(err, "open sample file")
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return errors.Wrap(err, "stat sample file")
	}
	size := info.Size()
	if size == 0 || u.N <= 0 {
		return nil
	}
	r := u.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	seen := hashmap.New[int64, struct{}]()
	tries := u.N
	if u.Distinct {
		tries = 8*u.N + 64
	}
	for drawn := 0; drawn < u.N && tries > 0; tries-- {
		start, err := lineStart(file, r.Int63n(size))
		if err != nil {
			return errors.Wrapf(err, "read %s", u.Path)
		}
		if !seen.Insert(start, struct{}{}) && u.Distinct {
			continue
		}
		line, err := bufio.NewReader(io.NewSectionReader(file, start, size-start)).ReadString('\n')
		if err != nil && err != io.EOF {
			return errors.Wrapf(err, "read %s", u.Path)
		}
		drawn++
		if w := strings.TrimSpace(line); w != "" && !f(w) {
			return nil
		}
	}
	return nil
}
