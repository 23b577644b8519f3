package strq

import "deedles.dev/strq/internal/list"

// Values returns the elements of q from head to tail.
func Values(q *Queue) []string {
	var vals []string
	for v := range q.ls.All() {
		vals = append(vals, string(v))
	}
	return vals
}

// Recount walks the chain and returns the number of nodes it finds
// along with whether the walk ended at the cached tail.
func Recount(q *Queue) (n int, tailOK bool) {
	var last *list.SingleNode[[]byte]
	for node := range q.ls.Nodes() {
		n++
		last = node
	}

	if n == 0 {
		return 0, q.ls.Back() == nil && q.ls.Front() == nil
	}
	return n, last == q.ls.Back() && q.ls.Back().Next() == nil
}

// DropHeadValue removes the stored value of the head node without
// removing the node.
func DropHeadValue(q *Queue) {
	q.ls.Front().Val = nil
}

// HeadTail returns the values at the head and tail of q.
func HeadTail(q *Queue) (head, tail string) {
	return string(q.ls.Front().Val), string(q.ls.Back().Val)
}
