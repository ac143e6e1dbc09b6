package treap

import (
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[*node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*node]int),
		max:     1,
	}
}

func (ids nodeids) find(n *node) int {
	return ids.idTable[n]
}

func (ids *nodeids) alloc(n *node) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Treap2Dot outputs the internal structure of a treap in Graphviz DOT format
// (for debugging purposes). Nodes are labelled with their element and
// priority; nodes at depth beyond the expected logarithmic range are
// highlighted.
func Treap2Dot(t *Treap, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if t.IsEmpty() {
		io.WriteString(w, "}\n")
		return
	}
	ids := newtable()
	nodelist, edgelist := "", ""
	deep := 2 * log2(t.Len())
	t.each(func(n *node, depth int) {
		ID := ids.alloc(n)
		label := fmt.Sprintf("%d/%d\\nprio %d", n.x.ID, n.x.Key, n.priority)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n, depth, depth > deep))
		for i, child := range [...]*node{n.left, n.right} {
			if child == nil {
				if n.isLeaf() {
					continue
				}
				nilid := ID + 10000*(i+1)
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(n *node, depth int, highlight bool) string {
	s := ",style=filled"
	if n.isLeaf() {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=ellipse"
	}
	if highlight {
		s += ",fillcolor=\"#ff6600\""
	} else {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(depth, len(hexcolors)-1)])
	}
	return s
}

func log2(n int) int {
	l := 0
	for n > 1 {
		n >>= 1
		l++
	}
	return l
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
