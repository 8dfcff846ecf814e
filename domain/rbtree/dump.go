package rbtree

import (
	"fmt"
	"io"
	"strings"

	"rbtree/infra/memory"
)

const emptyTree = "empty tree"

// String renders the tree shape, one node per line in pre-order:
//
//	└── 3 (B)
//	    ├── 1 (B)
//	    │   └── 2 (R)
//	    └── 4 (B)
//
// An empty tree renders as "empty tree".
func (t *Tree[K]) String() string {
	var sb strings.Builder
	_ = t.Render(&sb)
	return sb.String()
}

// Render writes the String form of the tree to w.
func (t *Tree[K]) Render(w io.Writer) error {
	if t.root == memory.Nil {
		_, err := io.WriteString(w, emptyTree)
		return err
	}

	type frame struct {
		r      memory.Ref
		prefix string
		last   bool
	}
	stack := []frame{{r: t.root, last: true}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.n(f.r)
		branch, indent := "├── ", "│   "
		if f.last {
			branch, indent = "└── ", "    "
		}
		if _, err := fmt.Fprintf(w, "%s%s%v (%s)\n", f.prefix, branch, n.key, t.color(f.r)); err != nil {
			return err
		}

		// push right first so the left subtree is written first
		child := f.prefix + indent
		if n.right != memory.Nil {
			stack = append(stack, frame{r: n.right, prefix: child, last: true})
		}
		if n.left != memory.Nil {
			stack = append(stack, frame{r: n.left, prefix: child, last: n.right == memory.Nil})
		}
	}
	return nil
}
