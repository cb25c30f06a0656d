package cli

// Screen names a REPL screen.
type Screen string

const (
	ScreenLogin             Screen = "Login"
	ScreenHome              Screen = "Home"
	ScreenPublications      Screen = "Publications"
	ScreenPublicationDetail Screen = "PublicationDetail"
	ScreenCreatePublication Screen = "CreatePublication"
)

// Navigator is a stack of screens. It is never empty.
type Navigator struct {
	stack []Screen
}

func NewNavigator(root Screen) *Navigator {
	return &Navigator{stack: []Screen{root}}
}

func (n *Navigator) Current() Screen {
	return n.stack[len(n.stack)-1]
}

// Push puts s on top of the stack.
func (n *Navigator) Push(s Screen) {
	n.stack = append(n.stack, s)
}

// Navigate goes back to s when it is already on the stack, popping every
// screen above it, and pushes it otherwise. It returns the popped screens,
// topmost first.
func (n *Navigator) Navigate(s Screen) []Screen {
	for i := len(n.stack) - 1; i >= 0; i-- {
		if n.stack[i] == s {
			popped := reversed(n.stack[i+1:])
			n.stack = n.stack[:i+1]
			return popped
		}
	}
	n.Push(s)
	return nil
}

// Back pops the top screen. It reports false at the root.
func (n *Navigator) Back() (Screen, bool) {
	if len(n.stack) == 1 {
		return "", false
	}
	top := n.Current()
	n.stack = n.stack[:len(n.stack)-1]
	return top, true
}

// Reset replaces the whole stack with root.
func (n *Navigator) Reset(root Screen) {
	n.stack = []Screen{root}
}

// Depth is the number of screens on the stack.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

func reversed(s []Screen) []Screen {
	out := make([]Screen, 0, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		out = append(out, s[i])
	}
	return out
}
