// Package Render draws trees that can be walked in pre-order: as Graphviz DOT,
// as PNG through the dot binary, and as plain text.
package Render

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/emicklei/dot"
	"github.com/g-m-twostay/go-rbtree/Queues"
	"github.com/g-m-twostay/go-rbtree/Trees"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Source is anything that can show its nodes root first; *Trees.RBTree is one.
type Source[T any, S constraints.Unsigned] interface {
	PreOrder(f func(Trees.NodeView[T, S]) bool)
}

// Layout is a drawn tree.
type Layout struct {
	Graph *dot.Graph
	// Nodes counts the real nodes, Placeholders the invisible ones standing
	// in for missing children.
	Nodes, Placeholders int
}

func (l Layout) String() string {
	return l.Graph.String()
}

type drawing[T any, S constraints.Unsigned] struct {
	Layout
	label func(T) string
}

func (u *drawing[T, S]) node(g *dot.Graph, n Trees.NodeView[T, S]) dot.Node {
	u.Nodes++
	fill := "black"
	if n.Red {
		fill = "red"
	}
	return g.Node("n"+strconv.FormatUint(uint64(n.ID), 10)).
		Attr("label", u.label(n.Value)).
		Attr("style", "filled").
		Attr("fillcolor", fill).
		Attr("fontcolor", "white")
}

// placeholder hangs an invisible node off from where the child in direction d is missing.
func (u *drawing[T, S]) placeholder(g *dot.Graph, from dot.Node, n Trees.NodeView[T, S], d Trees.Direction) {
	u.Placeholders++
	id := "n" + strconv.FormatUint(uint64(n.ID), 10) + "-dummy-" + d.String()
	to := g.Node(id).Attr("label", "").Attr("style", "invis")
	u.Graph.Edge(from, to).Attr("style", "invis")
}

// collect returns the root of src and its nodes by id.
func collect[T any, S constraints.Unsigned](src Source[T, S]) (root S, views map[S]Trees.NodeView[T, S]) {
	views = make(map[S]Trees.NodeView[T, S])
	src.PreOrder(func(n Trees.NodeView[T, S]) bool {
		if root == 0 {
			root = n.ID
		}
		views[n.ID] = n
		return true
	})
	return
}

func rank(g *dot.Graph, k int) *dot.Graph {
	sub := g.Subgraph("level" + strconv.Itoa(k))
	sub.Attr("rank", "same")
	return sub
}

// DOT draws the tree in src. Red nodes are filled red and black nodes black,
// edges are labeled with their direction, and nodes of the same depth share a
// rank. Every missing child of a node gets an invisible placeholder so that left
// and right children keep their sides in the layout. label formats values;
// nil means fmt.Sprint.
func DOT[T any, S constraints.Unsigned](src Source[T, S], label func(T) string) Layout {
	if label == nil {
		label = func(v T) string { return fmt.Sprint(v) }
	}
	u := drawing[T, S]{Layout: Layout{Graph: dot.NewGraph(dot.Directed)}, label: label}
	u.Graph.Attr("ordering", "out")

	root, views := collect(src)
	if root == 0 {
		return u.Layout
	}

	nodes := map[S]dot.Node{root: u.node(rank(u.Graph, 0), views[root])}
	q := Queues.MakeArrayQueue[S](uint(len(views)))
	q.Push(root)
	for k := 1; !q.Empty(); k++ {
		next := rank(u.Graph, k)
		for range q.Size() {
			i, _ := q.Pop()
			n, from := views[i], nodes[i]
			for _, d := range [2]Trees.Direction{Trees.Left, Trees.Right} {
				c := n.Child(d)
				if c == 0 {
					u.placeholder(next, from, n, d)
					continue
				}
				to := u.node(next, views[c])
				nodes[c] = to
				u.Graph.Edge(from, to, d.String())
				q.Push(c)
			}
		}
	}
	return u.Layout
}

// WriteDOT writes the DOT drawing of src to w.
func WriteDOT[T any, S constraints.Unsigned](w io.Writer, src Source[T, S], label func(T) string) error {
	_, err := io.WriteString(w, DOT(src, label).String())
	return errors.Wrap(err, "write dot")
}

// PNG renders l to a PNG file at path using the Graphviz dot binary, which must
// be on PATH.
func PNG(ctx context.Context, l Layout, path string) error {
	cmd := exec.CommandContext(ctx, "dot", "-Tpng", "-o", path)
	cmd.Stdin = strings.NewReader(l.String())
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "render %s: %s", path, strings.TrimSpace(stderr.String()))
	}
	return nil
}

func color(red bool) string {
	if red {
		return "red"
	}
	return "black"
}

// Text dumps src one node per line, root first:
// id, value, depth, color and the parent, left and right ids (0 when absent).
func Text[T any, S constraints.Unsigned](w io.Writer, src Source[T, S]) (err error) {
	src.PreOrder(func(n Trees.NodeView[T, S]) bool {
		_, err = fmt.Fprintf(w, "%d\t%v\tdepth=%d\t%s\tparent=%d\tleft=%d\tright=%d\n",
			n.ID, n.Value, n.Depth, color(n.Red), n.Parent, n.Left, n.Right)
		return err == nil
	})
	return errors.Wrap(err, "dump tree")
}

// Levels dumps src one depth per line, nodes left to right, red values marked
// with a '*'.
func Levels[T any, S constraints.Unsigned](w io.Writer, src Source[T, S]) error {
	root, views := collect(src)
	if root == 0 {
		return nil
	}
	var q Queues.ArrayQueue[S]
	q.Push(root)
	var line strings.Builder
	for k := 0; !q.Empty(); k++ {
		line.Reset()
		line.WriteString(strconv.Itoa(k))
		line.WriteByte(':')
		for range q.Size() {
			i, _ := q.Pop()
			n := views[i]
			fmt.Fprintf(&line, " %v", n.Value)
			if n.Red {
				line.WriteByte('*')
			}
			for _, c := range [2]S{n.Left, n.Right} {
				if c != 0 {
					q.Push(c)
				}
			}
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return errors.Wrap(err, "dump levels")
		}
	}
	return nil
}
