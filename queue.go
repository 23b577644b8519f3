package strq

import (
	"bytes"
	"strconv"
	"strings"

	"deedles.dev/strq/internal/list"
)

// A Queue holds strings in a chain of nodes. Each node owns its own
// copy of the string that was inserted.
//
// Every method may be called on a nil *Queue. Mutating methods report
// failure and Size reports zero in that case.
type Queue struct {
	_ noCopy

	ls list.Single[[]byte]
}

// New returns a new, empty Queue.
func New() *Queue {
	return new(Queue)
}

// Free releases every element of the queue in order, head first. The
// queue must not be used after Free returns. Calling Free on a nil
// Queue does nothing.
func (q *Queue) Free() {
	if q == nil {
		return
	}

	q.ls.Clear(func(n *list.SingleNode[[]byte]) {
		n.Val = nil
	})
}

// InsertHead adds a copy of s to the head of the queue. It returns
// false, without changing anything, if q is nil.
func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}

	q.ls.PushFront(own(s))
	return true
}

// InsertTail adds a copy of s to the tail of the queue. It returns
// false, without changing anything, if q is nil.
func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}

	q.ls.Enqueue(own(s))
	return true
}

// RemoveHead removes the element at the head of the queue. It returns
// false if q is nil or empty.
//
// If buf is not empty, it is zeroed and then up to len(buf)-1 bytes of
// the removed string are copied into it, so that the copy is always
// followed by at least one zero byte. A nil or empty buf discards the
// value. If buf is not empty but the head holds no value, RemoveHead
// returns false and leaves the head in place.
func (q *Queue) RemoveHead(buf []byte) bool {
	if q == nil {
		return false
	}

	head := q.ls.Front()
	if head == nil {
		return false
	}

	if len(buf) > 0 {
		if head.Val == nil {
			return false
		}

		clear(buf)
		copy(buf[:len(buf)-1], head.Val)
	}

	n := q.ls.Pop()
	n.Val = nil
	return true
}

// Size returns the number of elements in the queue, or 0 if q is nil.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}
	return q.ls.Len()
}

// Reverse reverses the order of the elements in the queue without
// allocating, copying, or freeing any of them. It does nothing if q
// is nil or holds fewer than two elements.
func (q *Queue) Reverse() {
	if q == nil {
		return
	}
	q.ls.Reverse()
}

// Sort sorts the queue in ascending byte-wise order. The sort is
// stable and only relinks existing elements.
//
// Queues with fewer than three elements are left as they are,
// including a two-element queue that is out of order.
func (q *Queue) Sort() {
	if q == nil || q.ls.Len() < 3 {
		return
	}
	q.ls.Sort(bytes.Compare)
}

// String formats the elements of the queue from head to tail, such as
// [a b c]. A nil Queue formats as NULL.
func (q *Queue) String() string {
	if q == nil {
		return "NULL"
	}

	var buf strings.Builder
	buf.WriteByte('[')
	var i int
	for v := range q.ls.All() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		i++

		if v == nil {
			buf.WriteString("NULL")
			continue
		}
		buf.WriteString(quote(v))
	}
	buf.WriteByte(']')
	return buf.String()
}

func quote(v []byte) string {
	s := string(v)
	if s == "" || strings.ContainsAny(s, " \t\n[]\"") {
		return strconv.Quote(s)
	}
	return s
}

// own returns a new copy of s. The result is never nil, even for an
// empty string, so that a stored empty string can be told apart from
// a missing value.
func own(s string) []byte {
	return append(make([]byte, 0, len(s)), s...)
}
