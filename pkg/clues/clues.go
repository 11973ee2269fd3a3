package clues

import "strings"

type node struct {
	text  string
	left  *node
	right *node
}

// Set is an unbalanced binary search tree of distinct clue texts, ordered by
// byte-wise string comparison. The zero value is an empty set.
type Set struct {
	root *node
	size int
}

// New creates an empty clue set.
func New() *Set {
	return &Set{}
}

// Insert adds text at the position dictated by its order. It returns false,
// leaving the set unchanged, when text is already present.
func (s *Set) Insert(text string) bool {
	link := &s.root
	for *link != nil {
		switch c := strings.Compare(text, (*link).text); {
		case c == 0:
			return false
		case c < 0:
			link = &(*link).left
		default:
			link = &(*link).right
		}
	}
	*link = &node{text: text}
	s.size++
	return true
}

// Contains reports whether text is in the set.
func (s *Set) Contains(text string) bool {
	n := s.root
	for n != nil {
		switch c := strings.Compare(text, n.text); {
		case c == 0:
			return true
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return false
}

// Len returns the number of distinct clues.
func (s *Set) Len() int {
	return s.size
}

// Walk visits clues in ascending order until fn returns false.
func (s *Set) Walk(fn func(text string) bool) {
	var stack []*node
	n := s.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n.text) {
			return
		}
		n = n.right
	}
}

// InOrder returns the clues in ascending order.
func (s *Set) InOrder() []string {
	out := make([]string, 0, s.size)
	s.Walk(func(text string) bool {
		out = append(out, text)
		return true
	})
	return out
}

// Clear releases every node once, children before parents.
func (s *Set) Clear() {
	if s.root == nil {
		return
	}
	// Reverse of a root-right-left pre-order is a left-right-root post-order.
	var order []*node
	stack := []*node{s.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, n)
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		order[i].left, order[i].right = nil, nil
	}
	s.root = nil
	s.size = 0
}
