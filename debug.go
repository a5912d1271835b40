package scrollpane

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool

// logf prints a pane-scoped debug line to stderr when the owning scene is in
// debug mode.
func (p *ScrollPane) logf(format string, args ...any) {
	if p.scene == nil || !p.scene.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[scrollpane] %s: %s\n", p.Name, fmt.Sprintf(format, args...))
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("scrollpane debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxTreeDepth is the depth past which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[scrollpane] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
