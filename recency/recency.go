// This file implements the recency list: the ordering of every cached key
// from least recently used to most recently used.

package recency

// node represents ONE key inside the list. Links run both ways so any key
// can be spliced out in O(1).
type node struct {
	// key is the cache key this node stands for
	key string

	// prev points toward the least recently used end
	prev *node

	// next points toward the most recently used end
	next *node
}

/*
List orders cache keys by recency. The head is the least recently used key
and the tail the most recently used; every read or write of a key moves it
to the tail.

The list tracks keys only, never entries. The cache's store is the sole
owner of entry data; this structure is position bookkeeping that the cache
updates in lock step with the store, under the same lock. A map from key to
node makes every splice O(1) without scanning the list.
*/
type List struct {
	// nodes maps cache keys to their list nodes.
	nodes map[string]*node

	// head is the LEAST recently used key
	head *node

	// tail is the MOST recently used key
	tail *node
}

func New() *List {
	return &List{nodes: make(map[string]*node)}
}

// Len returns the number of tracked keys.
func (l *List) Len() int {
	return len(l.nodes)
}

// Touch marks key as the most recently used, inserting it when new.
func (l *List) Touch(key string) {
	if n, ok := l.nodes[key]; ok {
		l.moveToBack(n)
		return
	}
	n := &node{key: key}
	l.nodes[key] = n
	l.pushBack(n)
}

// Remove stops tracking key, fixing head and tail as needed. Removing an
// untracked key is a no-op.
func (l *List) Remove(key string) {
	if n, ok := l.nodes[key]; ok {
		l.unlink(n)
		delete(l.nodes, key)
	}
}

// LRU returns the least recently used key. ok is false when the list is
// empty.
func (l *List) LRU() (key string, ok bool) {
	if l.head == nil {
		return "", false
	}
	return l.head.key, true
}

// MRU returns the most recently used key. ok is false when the list is
// empty.
func (l *List) MRU() (key string, ok bool) {
	if l.tail == nil {
		return "", false
	}
	return l.tail.key, true
}

// Keys returns every tracked key in recency order, least recently used
// first.
func (l *List) Keys() []string {
	keys := make([]string, 0, len(l.nodes))
	for n := l.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// Reset drops every tracked key at once.
func (l *List) Reset() {
	clear(l.nodes)
	l.head = nil
	l.tail = nil
}

// pushBack appends a node at the tail, the most recently used position.
func (l *List) pushBack(n *node) {
	n.prev = l.tail
	if l.tail != nil {
		l.tail.next = n
	}
	l.tail = n

	// First node: head and tail are the same.
	if l.head == nil {
		l.head = n
	}
}

// unlink splices a node out of the list. It correctly updates:
// - the previous node's next pointer
// - the next node's prev pointer
// - head and tail when the node sits at either end
func (l *List) unlink(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}

// moveToBack re-marks an existing node as most recently used.
func (l *List) moveToBack(n *node) {
	if l.tail == n {
		return
	}
	l.unlink(n)
	l.pushBack(n)
}
