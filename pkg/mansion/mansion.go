package mansion

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName     = errors.New("room name is empty")
	ErrDuplicateRoom = errors.New("duplicate room name")
	ErrUnknownParent = errors.New("unknown parent room")
	ErrSlotTaken     = errors.New("child slot already taken")
	ErrInvalidSide   = errors.New("invalid side")
)

// Side selects a child slot of a room.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// Room is a node of the mansion. Children are owned by their parent.
type Room struct {
	name  string
	left  *Room
	right *Room
}

// NewRoom creates a childless room.
func NewRoom(name string) *Room {
	return &Room{name: name}
}

func (r *Room) Name() string { return r.name }
func (r *Room) Left() *Room  { return r.left }
func (r *Room) Right() *Room { return r.right }

// IsLeaf reports whether no further paths leave the room.
func (r *Room) IsLeaf() bool {
	return r.left == nil && r.right == nil
}

// SetLeft wires child into the left slot. Only used while building.
func (r *Room) SetLeft(child *Room) error {
	if r.left != nil {
		return fmt.Errorf("%w: %s already has %s on the left", ErrSlotTaken, r.name, r.left.name)
	}
	r.left = child
	return nil
}

// SetRight wires child into the right slot. Only used while building.
func (r *Room) SetRight(child *Room) error {
	if r.right != nil {
		return fmt.Errorf("%w: %s already has %s on the right", ErrSlotTaken, r.name, r.right.name)
	}
	r.right = child
	return nil
}

// Placement attaches Room under Parent on Side.
type Placement struct {
	Parent string `json:"parent" yaml:"parent"`
	Side   Side   `json:"side" yaml:"side"`
	Room   string `json:"room" yaml:"room"`
}

// Layout is the fixed construction sequence of a mansion.
type Layout struct {
	Root       string      `json:"root" yaml:"root"`
	Placements []Placement `json:"placements" yaml:"placements"`
}

// Tree is an immutable-after-build binary tree of rooms.
type Tree struct {
	root   *Room
	byName map[string]*Room
}

// Build wires the layout into a tree. A parent must be placed before its
// children, which keeps the result acyclic with a single path per room.
func Build(layout Layout) (*Tree, error) {
	if layout.Root == "" {
		return nil, fmt.Errorf("root: %w", ErrEmptyName)
	}

	root := NewRoom(layout.Root)
	t := &Tree{
		root:   root,
		byName: map[string]*Room{root.name: root},
	}

	for i, p := range layout.Placements {
		if p.Room == "" {
			return nil, fmt.Errorf("placement %d: %w", i, ErrEmptyName)
		}
		if _, exists := t.byName[p.Room]; exists {
			return nil, fmt.Errorf("placement %d: %w: %s", i, ErrDuplicateRoom, p.Room)
		}
		parent, ok := t.byName[p.Parent]
		if !ok {
			return nil, fmt.Errorf("placement %d: %w: %q", i, ErrUnknownParent, p.Parent)
		}

		child := NewRoom(p.Room)
		var err error
		switch p.Side {
		case Left:
			err = parent.SetLeft(child)
		case Right:
			err = parent.SetRight(child)
		default:
			err = fmt.Errorf("%w: %q", ErrInvalidSide, p.Side)
		}
		if err != nil {
			return nil, fmt.Errorf("placement %d: %w", i, err)
		}
		t.byName[child.name] = child
	}

	return t, nil
}

// Root returns the starting room, or nil after Release.
func (t *Tree) Root() *Room {
	return t.root
}

// Find looks a room up by name.
func (t *Tree) Find(name string) (*Room, bool) {
	r, ok := t.byName[name]
	return r, ok
}

// Len returns the number of rooms.
func (t *Tree) Len() int {
	return len(t.byName)
}

// Walk visits rooms in pre-order until fn returns false.
func (t *Tree) Walk(fn func(r *Room, depth int) bool) {
	if t.root == nil {
		return
	}
	type frame struct {
		room  *Room
		depth int
	}
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.room, f.depth) {
			return
		}
		// right first so left is visited first
		if f.room.right != nil {
			stack = append(stack, frame{f.room.right, f.depth + 1})
		}
		if f.room.left != nil {
			stack = append(stack, frame{f.room.left, f.depth + 1})
		}
	}
}

// Depth returns the number of levels in the tree.
func (t *Tree) Depth() int {
	deepest := 0
	t.Walk(func(_ *Room, depth int) bool {
		deepest = max(deepest, depth+1)
		return true
	})
	return deepest
}

// Release tears the tree down in post-order, detaching every room once.
// It returns the number of rooms released.
func (t *Tree) Release() int {
	if t.root == nil {
		return 0
	}

	released := 0
	stack := []*Room{t.root}
	var last *Room
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		switch {
		case top.left != nil && last != top.left && (top.right == nil || last != top.right):
			stack = append(stack, top.left)
		case top.right != nil && last != top.right:
			stack = append(stack, top.right)
		default:
			stack = stack[:len(stack)-1]
			top.left, top.right = nil, nil
			released++
			last = top
		}
	}

	t.root = nil
	t.byName = map[string]*Room{}
	return released
}
