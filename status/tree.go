// Package status implements the ordered structure a sweep keeps its active
// segments in: a plain binary search tree keyed by int, with parent links for
// in-order successor and predecessor walks.
//
// Nodes live in an arena and refer to each other by index, so there are no
// pointer cycles to manage and removed slots are reused. The tree does not
// balance itself. Monotone insertion order degrades it to a list, and every
// operation becomes O(n).
package status

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// A Handle addresses a node in the arena. It stays valid until that node is
// removed, regardless of other insertions and removals.
type Handle int

// None is the handle of a missing node.
const None Handle = -1

type node[V any] struct {
	key                 int
	content             V
	left, right, parent Handle
}

type Tree[V any] struct {
	nodes   []node[V]
	free    []Handle
	root    Handle
	size    int
	compare func(a, b int) int
}

// Create a tree ordered by the natural order of its keys.
func New[V any]() *Tree[V] {
	return NewWithComparator[V](cmp.Compare[int])
}

// Create a tree whose keys are ordered by compare instead of by value. compare
// must be a strict total order over the keys present in the tree whenever the
// tree is searched or inserted into; only equal keys may compare as 0.
func NewWithComparator[V any](compare func(a, b int) int) *Tree[V] {
	return &Tree[V]{root: None, compare: compare}
}

func (t *Tree[V]) Len() int {
	return t.size
}

func (t *Tree[V]) Empty() bool {
	return t.size == 0
}

// Insert content under key. Duplicate keys are rejected, never overwritten.
func (t *Tree[V]) Insert(key int, content V) bool {
	_, ok := t.InsertHandle(key, content)
	return ok
}

// Insert and return the new node's handle. If the key is already present, the
// existing node's handle is returned along with false.
func (t *Tree[V]) InsertHandle(key int, content V) (Handle, bool) {
	parent := None
	n := t.root
	c := 0
	for n != None {
		parent = n
		c = t.compare(key, t.nodes[n].key)
		if c < 0 {
			n = t.nodes[n].left
		} else if c > 0 {
			n = t.nodes[n].right
		} else {
			return n, false
		}
	}

	h := t.alloc(key, content, parent)
	switch {
	case parent == None:
		t.root = h
	case c < 0:
		t.nodes[parent].left = h
	default:
		t.nodes[parent].right = h
	}
	t.size++
	return h, true
}

// Find the node holding key, or None.
func (t *Tree[V]) Find(key int) Handle {
	n := t.root
	for n != None {
		c := t.compare(key, t.nodes[n].key)
		if c < 0 {
			n = t.nodes[n].left
		} else if c > 0 {
			n = t.nodes[n].right
		} else {
			return n
		}
	}
	return None
}

func (t *Tree[V]) Search(key int) (content V, ok bool) {
	return t.contentOf(t.Find(key))
}

func (t *Tree[V]) Min() (content V, ok bool) {
	return t.contentOf(t.First())
}

func (t *Tree[V]) Max() (content V, ok bool) {
	return t.contentOf(t.Last())
}

// Content under the next larger key. The key itself must be present.
func (t *Tree[V]) Succ(key int) (content V, ok bool) {
	n := t.Find(key)
	if n == None {
		return content, false
	}
	return t.contentOf(t.Next(n))
}

// Content under the next smaller key. The key itself must be present.
func (t *Tree[V]) Pred(key int) (content V, ok bool) {
	n := t.Find(key)
	if n == None {
		return content, false
	}
	return t.contentOf(t.Prev(n))
}

// Remove the node holding key. Returns false if there is none.
func (t *Tree[V]) Remove(key int) bool {
	n := t.Find(key)
	if n == None {
		return false
	}
	t.RemoveHandle(n)
	return true
}

// Leftmost node, or None if the tree is empty
func (t *Tree[V]) First() Handle {
	if t.root == None {
		return None
	}
	return t.min(t.root)
}

// Rightmost node, or None if the tree is empty
func (t *Tree[V]) Last() Handle {
	if t.root == None {
		return None
	}
	return t.max(t.root)
}

// In-order successor of n. If n has a right subtree, this is that subtree's
// minimum. Otherwise climb until we arrive at a parent from its left side.
func (t *Tree[V]) Next(n Handle) Handle {
	if n == None {
		return None
	}
	if right := t.nodes[n].right; right != None {
		return t.min(right)
	}
	p := t.nodes[n].parent
	for p != None && n == t.nodes[p].right {
		n = p
		p = t.nodes[p].parent
	}
	return p
}

// In-order predecessor of n, the mirror image of Next.
func (t *Tree[V]) Prev(n Handle) Handle {
	if n == None {
		return None
	}
	if left := t.nodes[n].left; left != None {
		return t.max(left)
	}
	p := t.nodes[n].parent
	for p != None && n == t.nodes[p].left {
		n = p
		p = t.nodes[p].parent
	}
	return p
}

// Find the leftmost node whose key has probe(key) >= 0. The probe must be
// monotone along the tree's order (negative for a prefix of the keys,
// non-negative after). This is how a caller looks up a position that is not a
// key, such as a coordinate.
func (t *Tree[V]) LowerBound(probe func(key int) int) Handle {
	best := None
	n := t.root
	for n != None {
		if probe(t.nodes[n].key) >= 0 {
			best = n
			n = t.nodes[n].left
		} else {
			n = t.nodes[n].right
		}
	}
	return best
}

func (t *Tree[V]) Key(n Handle) int {
	return t.nodes[n].key
}

func (t *Tree[V]) Content(n Handle) V {
	return t.nodes[n].content
}

// Unlink n from the tree. Leaves and single child nodes are spliced out
// directly. A node with two children is replaced by its in-order successor,
// whose own position (which never has a left child) is spliced out first.
// The successor node moves rather than its payload, so no other handle
// changes meaning.
func (t *Tree[V]) RemoveHandle(z Handle) {
	zn := t.nodes[z]
	switch {
	case zn.left == None:
		t.transplant(z, zn.right)
	case zn.right == None:
		t.transplant(z, zn.left)
	default:
		y := t.min(zn.right)
		if t.nodes[y].parent != z {
			t.transplant(y, t.nodes[y].right)
			t.nodes[y].right = zn.right
			t.nodes[zn.right].parent = y
		}
		t.transplant(z, y)
		t.nodes[y].left = zn.left
		t.nodes[zn.left].parent = y
	}
	t.release(z)
}

// Replace the subtree rooted at u with the one rooted at v, from u's parent's
// point of view.
func (t *Tree[V]) transplant(u, v Handle) {
	p := t.nodes[u].parent
	switch {
	case p == None:
		t.root = v
	case u == t.nodes[p].left:
		t.nodes[p].left = v
	default:
		t.nodes[p].right = v
	}
	if v != None {
		t.nodes[v].parent = p
	}
}

func (t *Tree[V]) min(n Handle) Handle {
	for t.nodes[n].left != None {
		n = t.nodes[n].left
	}
	return n
}

func (t *Tree[V]) max(n Handle) Handle {
	for t.nodes[n].right != None {
		n = t.nodes[n].right
	}
	return n
}

func (t *Tree[V]) contentOf(n Handle) (content V, ok bool) {
	if n == None {
		return content, false
	}
	return t.nodes[n].content, true
}

func (t *Tree[V]) alloc(key int, content V, parent Handle) Handle {
	fresh := node[V]{key: key, content: content, left: None, right: None, parent: parent}
	if len(t.free) > 0 {
		h := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.nodes[h] = fresh
		return h
	}
	t.nodes = append(t.nodes, fresh)
	return Handle(len(t.nodes) - 1)
}

func (t *Tree[V]) release(n Handle) {
	var zero node[V]
	t.nodes[n] = zero
	t.nodes[n].left, t.nodes[n].right, t.nodes[n].parent = None, None, None
	t.free = append(t.free, n)
	t.size--
}

// Keys in order
func (t *Tree[V]) Keys() []int {
	keys := make([]int, 0, t.size)
	for n := t.First(); n != None; n = t.Next(n) {
		keys = append(keys, t.nodes[n].key)
	}
	return keys
}

// Number of nodes on the longest root to leaf path
func (t *Tree[V]) Height() int {
	var height func(n Handle) int
	height = func(n Handle) int {
		if n == None {
			return 0
		}
		return 1 + max(height(t.nodes[n].left), height(t.nodes[n].right))
	}
	return height(t.root)
}

// Check the search tree ordering, and that every child link agrees with the
// child's parent link.
func (t *Tree[V]) Validate() error {
	if t.root != None && t.nodes[t.root].parent != None {
		return errors.Errorf("root %d has parent %d", t.nodes[t.root].key, t.nodes[t.root].parent)
	}
	count := 0
	var check func(n Handle, low, high *int) error
	check = func(n Handle, low, high *int) error {
		if n == None {
			return nil
		}
		count++
		nd := t.nodes[n]
		if low != nil && t.compare(nd.key, *low) <= 0 {
			return errors.Errorf("key %d is not greater than ancestor %d", nd.key, *low)
		}
		if high != nil && t.compare(nd.key, *high) >= 0 {
			return errors.Errorf("key %d is not less than ancestor %d", nd.key, *high)
		}
		for _, child := range []Handle{nd.left, nd.right} {
			if child != None && t.nodes[child].parent != n {
				return errors.Errorf("child %d of %d points back to %d", t.nodes[child].key, nd.key, t.nodes[child].parent)
			}
		}
		if err := check(nd.left, low, &nd.key); err != nil {
			return err
		}
		return check(nd.right, &nd.key, high)
	}
	if err := check(t.root, nil, nil); err != nil {
		return err
	}
	if count != t.size {
		return errors.Errorf("reached %d nodes but size is %d", count, t.size)
	}
	return nil
}

// Sideways dump of the tree, right subtree on top.
func (t *Tree[V]) String() string {
	if t.root == None {
		return "∅"
	}
	var sb strings.Builder
	var print func(n Handle, depth int)
	print = func(n Handle, depth int) {
		if n == None {
			return
		}
		print(t.nodes[n].right, depth+1)
		fmt.Fprintf(&sb, "%s%d: %v\n", strings.Repeat("    ", depth), t.nodes[n].key, t.nodes[n].content)
		print(t.nodes[n].left, depth+1)
	}
	print(t.root, 0)
	return strings.TrimSuffix(sb.String(), "\n")
}
