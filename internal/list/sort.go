package list

func mergeSort[T any](head *SingleNode[T], cmp func(a, b T) int) *SingleNode[T] {
	if head == nil || head.next == nil {
		return head
	}

	front, back := split(head)
	return merge(mergeSort(front, cmp), mergeSort(back, cmp), cmp)
}

// split cuts the chain starting at head in half, returning the start
// of each half. For an odd number of nodes the front half gets the
// extra one. head must have at least two nodes.
func split[T any](head *SingleNode[T]) (front, back *SingleNode[T]) {
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	back = slow.next
	slow.next = nil
	return head, back
}

// merge merges two sorted chains. When the fronts are equal, the node
// from a goes first.
func merge[T any](a, b *SingleNode[T], cmp func(a, b T) int) *SingleNode[T] {
	var head, tail *SingleNode[T]
	appendNode := func(n *SingleNode[T]) {
		if tail == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}

	for a != nil && b != nil {
		if cmp(b.Val, a.Val) < 0 {
			next := b.next
			appendNode(b)
			b = next
			continue
		}

		next := a.next
		appendNode(a)
		a = next
	}

	rest := a
	if rest == nil {
		rest = b
	}
	if tail == nil {
		return rest
	}
	tail.next = rest
	return head
}
