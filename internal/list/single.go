package list

import "iter"

// Single is a singly-linked list that also contains a reference to
// the last node for quick inserts at the head and tail and removals
// at the head. It caches its length.
type Single[T any] struct {
	head, tail *SingleNode[T]
	len        int
}

// Len returns the number of nodes in the list.
func (ls *Single[T]) Len() int {
	return ls.len
}

// PushFront adds v as a new node before the head of the list.
func (ls *Single[T]) PushFront(v T) {
	n := &SingleNode[T]{Val: v, next: ls.head}
	ls.head = n
	if ls.tail == nil {
		ls.tail = n
	}
	ls.len++
}

// Enqueue adds v as a new node at the tail of the list.
func (ls *Single[T]) Enqueue(v T) {
	n := ls.tail.insert()
	n.Val = v
	ls.tail = n

	if ls.head == nil {
		ls.head = n
	}
	ls.len++
}

// Front returns the head node, or nil if the list is empty. The node
// remains owned by the list.
func (ls *Single[T]) Front() *SingleNode[T] {
	return ls.head
}

// Back returns the tail node, or nil if the list is empty.
func (ls *Single[T]) Back() *SingleNode[T] {
	return ls.tail
}

// Pop detaches the current head node from the list and returns it. It
// returns nil if the list was already empty. The returned node is no
// longer linked to anything.
func (ls *Single[T]) Pop() *SingleNode[T] {
	if ls.head == nil {
		return nil
	}

	n := ls.head
	ls.head = n.next
	if ls.head == nil {
		ls.tail = nil
	}
	ls.len--

	n.next = nil
	return n
}

// Clear unlinks every node, head first. If release is not nil, it is
// called with each node after it has been detached from the list.
func (ls *Single[T]) Clear(release func(*SingleNode[T])) {
	for n := ls.Pop(); n != nil; n = ls.Pop() {
		if release != nil {
			release(n)
		}
	}
}

// Reverse reverses the order of the list by relinking its nodes in
// place.
func (ls *Single[T]) Reverse() {
	if ls.len < 2 {
		return
	}

	var prev *SingleNode[T]
	cur := ls.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}

	ls.head, ls.tail = ls.tail, ls.head
}

// Sort stably sorts the list in ascending order according to cmp,
// which must return a negative number when a < b, a positive number
// when a > b, and zero when they are equal. Nodes are relinked, never
// copied.
func (ls *Single[T]) Sort(cmp func(a, b T) int) {
	if ls.len < 2 {
		return
	}

	ls.head = mergeSort(ls.head, cmp)

	tail := ls.head
	for tail.next != nil {
		tail = tail.next
	}
	ls.tail = tail
}

// All returns an iterator over the elements of the list.
func (ls *Single[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur.Val) {
				return
			}
			cur = cur.next
		}
	}
}

// Nodes returns an iterator over the nodes of the list.
func (ls *Single[T]) Nodes() iter.Seq[*SingleNode[T]] {
	return func(yield func(*SingleNode[T]) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur) {
				return
			}
			cur = cur.next
		}
	}
}

// SingleNode is a node of a [Single].
type SingleNode[T any] struct {
	Val  T
	next *SingleNode[T]
}

// Next returns the node following n, or nil if n is the last node.
func (n *SingleNode[T]) Next() *SingleNode[T] {
	return n.next
}

func (n *SingleNode[T]) insert() *SingleNode[T] {
	if n == nil {
		return new(SingleNode[T])
	}

	n.next = &SingleNode[T]{next: n.next}
	return n.next
}
