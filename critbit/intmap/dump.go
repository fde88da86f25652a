package intmap

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var colorize = struct {
	Node  func(...interface{}) string
	Leaf  func(...interface{}) string
	Empty func(...interface{}) string
}{
	Node:  color.New(color.FgHiBlue).SprintFunc(),
	Leaf:  color.New(color.FgHiGreen).SprintFunc(),
	Empty: color.New(color.FgHiWhite, color.Faint).SprintFunc(),
}

// DebugDump prints the tree structure to stdout.
func (t *Map[K, V]) DebugDump() {
	t.Dump(color.Output)
}

// Dump writes the tree structure, one slot per line, children indented under their node.
func (t *Map[K, V]) Dump(w io.Writer) {
	dump(w, &t.root, "T:", "")
}

func dump[K Key, V any](w io.Writer, ref *Ref[K, V], tag string, indent string) {
	switch {
	case ref.node != nil:
		fmt.Fprintf(w, "%s%s %s crit=%d\n", indent, tag, colorize.Node("NODE"), ref.node.crit)

		dump(w, &ref.node.child[0], "L:", indent+"  ")
		dump(w, &ref.node.child[1], "R:", indent+"  ")
	case ref.leaf != nil:
		fmt.Fprintf(w, "%s%s %s key=%v bits=%s val=%v\n",
			indent, tag, colorize.Leaf("LEAF"), ref.leaf.Key, bitString(ref.leaf.Key), ref.leaf.Val)
	default:
		fmt.Fprintf(w, "%s%s %s\n", indent, tag, colorize.Empty("EMPTY"))
	}
}

// bitString formats a key as a zero-padded binary string of the key width.
func bitString[K Key](key K) string {
	return fmt.Sprintf("%0*b", int(bitWidth[K]()), uint64(key))
}
