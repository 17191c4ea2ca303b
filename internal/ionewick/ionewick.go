// Package ionewick reads and writes phylogenetic trees in Newick format.
// Parsing is done by gotree, the parsed tree is converted to phylo.Node.
package ionewick

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/evolbioinfo/gotree/io/newick"
	"github.com/evolbioinfo/gotree/tree"
	"github.com/gnames/gnt2t/pkg/phylo"
)

// Read parses a Newick file.
func Read(path string) (*phylo.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ParseError(path, err)
	}
	defer f.Close()

	res, err := Parse(f)
	if err != nil {
		return nil, ParseError(path, err)
	}
	return res, nil
}

// Parse reads one Newick tree. Numeric labels of internal nodes are kept
// as labels, so decoration can take them as support values.
func Parse(r io.Reader) (*phylo.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	masked, labels := maskQuoted(string(data))
	t, err := newick.NewParser(strings.NewReader(masked)).Parse()
	if err != nil {
		return nil, err
	}
	root := t.Root()
	if root == nil {
		return nil, EmptyTreeError()
	}
	return convert(root, nil, nil, labels), nil
}

// maskQuoted replaces quoted labels with plain tokens, so labels like
// '95:g__Escherichia' reach the tree intact. Returned map restores them.
func maskQuoted(s string) (string, map[string]string) {
	labels := make(map[string]string)
	var sb, label strings.Builder
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '\'' {
			sb.WriteRune(rs[i])
			continue
		}
		label.Reset()
		for i++; i < len(rs); i++ {
			if rs[i] == '\'' {
				if i+1 < len(rs) && rs[i+1] == '\'' {
					label.WriteRune('\'')
					i++
					continue
				}
				break
			}
			label.WriteRune(rs[i])
		}
		token := fmt.Sprintf("gnt2tq%d", len(labels))
		labels[token] = label.String()
		sb.WriteString(token)
	}
	return sb.String(), labels
}

// convert copies a gotree subtree. The edge leads from the parent to the
// node and is nil for the root.
func convert(
	n, parent *tree.Node,
	e *tree.Edge,
	labels map[string]string,
) *phylo.Node {
	name := n.Name()
	if label, ok := labels[name]; ok {
		name = label
	}
	res := phylo.New(name)
	if e != nil {
		if l := e.Length(); l != tree.NIL_LENGTH {
			res.Length = &l
		}
		if s := e.Support(); res.Name == "" && !n.Tip() && s != tree.NIL_SUPPORT {
			res.Name = strconv.FormatFloat(s, 'f', -1, 64)
		}
	}

	edges := n.Edges()
	for i, v := range n.Neigh() {
		if v == parent {
			continue
		}
		res.AddChild(convert(v, n, edges[i], labels))
	}
	return res
}

// Format renders a tree as a Newick string.
func Format(root *phylo.Node) string {
	var sb strings.Builder
	format(&sb, root)
	sb.WriteString(";")
	return sb.String()
}

func format(sb *strings.Builder, n *phylo.Node) {
	if !n.IsTip() {
		sb.WriteString("(")
		for i, v := range n.Children {
			if i > 0 {
				sb.WriteString(",")
			}
			format(sb, v)
		}
		sb.WriteString(")")
	}
	sb.WriteString(Quote(n.Name))
	if n.Length != nil {
		sb.WriteString(":")
		sb.WriteString(strconv.FormatFloat(*n.Length, 'f', -1, 64))
	}
}

// Quote wraps a label in single quotes if it contains Newick
// metacharacters or white space. Inner quotes are doubled.
func Quote(label string) string {
	if !strings.ContainsAny(label, " \t\n()[]':;,") {
		return label
	}
	return "'" + strings.ReplaceAll(label, "'", "''") + "'"
}

// Write saves a tree to a Newick file.
func Write(path string, root *phylo.Node) error {
	err := os.WriteFile(path, []byte(Format(root)+"\n"), 0644)
	if err != nil {
		return WriteError(path, err)
	}
	return nil
}
