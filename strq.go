// Package strq provides a queue of strings backed by a singly-linked
// list. Strings can be added at either end and removed from the head,
// so a Queue works as both a FIFO and a LIFO. The whole queue can also
// be reversed or sorted in place.
//
// A Queue is not safe for concurrent use. Callers that share one
// between goroutines must serialize access to it, for example with a
// sync.Mutex held for the duration of each call.
package strq

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
