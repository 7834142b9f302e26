// Package bst implements a fixed-capacity binary search tree.
//
// Nodes are arena slots linked by index: each node records its left child,
// right child, and parent. The parent links make in-order iteration a pure
// pointer walk with no recursion and no auxiliary stack, so traversal itself
// never allocates.
//
// Duplicate keys are rejected: Insert on a present key reports false and
// leaves the stored value untouched.
package bst

import (
	"cmp"
	"iter"

	"github.com/nilheap/fixedcol"
	"github.com/nilheap/fixedcol/arena"
)

type node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	left   fixedcol.Index
	right  fixedcol.Index
	parent fixedcol.Index
}

// Tree is an ordered key/value store. All keys in a node's left subtree
// compare less than the node's key; all keys in its right subtree compare
// greater.
type Tree[K cmp.Ordered, V any] struct {
	nodes *arena.Arena[node[K, V]]
	root  fixedcol.Index
}

// New creates a Tree with room for capacity nodes.
func New[K cmp.Ordered, V any](capacity int) *Tree[K, V] {
	return &Tree[K, V]{
		nodes: arena.New[node[K, V]](capacity),
		root:  fixedcol.Invalid,
	}
}

// Insert adds a key/value pair as a new leaf. It reports false (with no
// error) when the key is already present. Returns
// *fixedcol.ErrCapacityExceeded when the node arena is full.
func (t *Tree[K, V]) Insert(key K, value V) (bool, error) {
	if t.root == fixedcol.Invalid {
		i, err := t.nodes.Alloc(newNode(key, value))
		if err != nil {
			return false, err
		}
		t.root = i
		return true, nil
	}

	cur := t.root
	for {
		n, _ := t.nodes.Get(cur)
		switch {
		case key == n.key:
			return false, nil
		case key < n.key:
			if n.left == fixedcol.Invalid {
				i, err := t.nodes.Alloc(newNode(key, value))
				if err != nil {
					return false, err
				}
				// n stays valid: the arena never moves its slots.
				n.left = i
				t.mustGet(i).parent = cur
				return true, nil
			}
			cur = n.left
		default:
			if n.right == fixedcol.Invalid {
				i, err := t.nodes.Alloc(newNode(key, value))
				if err != nil {
					return false, err
				}
				n.right = i
				t.mustGet(i).parent = cur
				return true, nil
			}
			cur = n.right
		}
	}
}

// Find returns the value stored under key.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	if i := t.locate(key); i != fixedcol.Invalid {
		return t.mustGet(i).value, true
	}
	var zero V
	return zero, false
}

// Remove deletes key and returns its value. Deletion follows the standard
// three cases: a leaf detaches, a single-child node splices its child up, and
// a two-child node takes its in-order successor's key/value and the successor
// node (which has at most one child) is deleted instead.
func (t *Tree[K, V]) Remove(key K) (V, bool) {
	cur := t.locate(key)
	if cur == fixedcol.Invalid {
		var zero V
		return zero, false
	}

	n := t.mustGet(cur)
	value := n.value

	if n.left != fixedcol.Invalid && n.right != fixedcol.Invalid {
		succ := t.leftmost(n.right)
		sn := t.mustGet(succ)
		n.key = sn.key
		n.value = sn.value
		cur, n = succ, sn
	}

	child := n.left
	if child == fixedcol.Invalid {
		child = n.right
	}
	t.replaceInParent(cur, n.parent, child)
	_ = t.nodes.Free(cur)

	return value, true
}

// Min returns the smallest key and its value.
func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.root == fixedcol.Invalid {
		var k K
		var v V
		return k, v, false
	}
	n := t.mustGet(t.leftmost(t.root))
	return n.key, n.value, true
}

// Max returns the largest key and its value.
func (t *Tree[K, V]) Max() (K, V, bool) {
	if t.root == fixedcol.Invalid {
		var k K
		var v V
		return k, v, false
	}
	cur := t.root
	for {
		n := t.mustGet(cur)
		if n.right == fixedcol.Invalid {
			return n.key, n.value, true
		}
		cur = n.right
	}
}

// Len returns the number of stored keys.
func (t *Tree[K, V]) Len() int { return t.nodes.Len() }

// Cap returns the fixed capacity declared at construction.
func (t *Tree[K, V]) Cap() int { return t.nodes.Cap() }

// InOrder returns an ascending iterator over all (key, value) pairs. The
// sequence is lazy and restartable; each range statement walks the tree
// afresh. The tree must not be mutated while iterating.
func (t *Tree[K, V]) InOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root == fixedcol.Invalid {
			return
		}
		for i := t.leftmost(t.root); i != fixedcol.Invalid; i = t.successor(i) {
			n := t.mustGet(i)
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

func newNode[K cmp.Ordered, V any](key K, value V) node[K, V] {
	return node[K, V]{
		key:    key,
		value:  value,
		left:   fixedcol.Invalid,
		right:  fixedcol.Invalid,
		parent: fixedcol.Invalid,
	}
}

// locate returns the index of the node holding key, or Invalid.
func (t *Tree[K, V]) locate(key K) fixedcol.Index {
	cur := t.root
	for cur != fixedcol.Invalid {
		n := t.mustGet(cur)
		switch {
		case key == n.key:
			return cur
		case key < n.key:
			cur = n.left
		default:
			cur = n.right
		}
	}
	return fixedcol.Invalid
}

func (t *Tree[K, V]) leftmost(i fixedcol.Index) fixedcol.Index {
	for {
		n := t.mustGet(i)
		if n.left == fixedcol.Invalid {
			return i
		}
		i = n.left
	}
}

// successor returns the in-order successor of i: the leftmost node of the
// right subtree, or else the nearest ancestor whose left subtree contains i.
func (t *Tree[K, V]) successor(i fixedcol.Index) fixedcol.Index {
	n := t.mustGet(i)
	if n.right != fixedcol.Invalid {
		return t.leftmost(n.right)
	}
	p := n.parent
	for p != fixedcol.Invalid {
		pn := t.mustGet(p)
		if pn.left == i {
			return p
		}
		i, p = p, pn.parent
	}
	return fixedcol.Invalid
}

func (t *Tree[K, V]) replaceInParent(i, parent, child fixedcol.Index) {
	if child != fixedcol.Invalid {
		t.mustGet(child).parent = parent
	}
	if parent == fixedcol.Invalid {
		t.root = child
		return
	}
	pn := t.mustGet(parent)
	if pn.left == i {
		pn.left = child
	} else {
		pn.right = child
	}
}

// mustGet is for internal links, which are valid by construction.
func (t *Tree[K, V]) mustGet(i fixedcol.Index) *node[K, V] {
	n, _ := t.nodes.Get(i)
	return n
}
