// Package trie provides a character-keyed prefix tree that finds the longest
// (or shortest) key contained at the start of a text.
package trie

import "unicode/utf8"

// Trie maps strings to values. Keys are walked rune by rune, so a match never
// ends in the middle of a multi-byte character.
type Trie[V any] struct {
	root node[V]
	size int
}

type node[V any] struct {
	value    V
	hasValue bool
	children map[rune]*node[V]
}

func New[V any]() *Trie[V] {
	return &Trie[V]{}
}

// Insert stores value under key, replacing any previous value.
// The empty key sets the value of the root.
func (t *Trie[V]) Insert(key string, value V) {
	n := &t.root
	for _, ch := range key {
		if n.children == nil {
			n.children = make(map[rune]*node[V])
		}
		child, ok := n.children[ch]
		if !ok {
			child = &node[V]{}
			n.children[ch] = child
		}
		n = child
	}
	if !n.hasValue {
		t.size++
	}
	n.value = value
	n.hasValue = true
}

// Get returns the value stored under exactly key.
func (t *Trie[V]) Get(key string) (V, bool) {
	n := t.find(key)
	if n == nil || !n.hasValue {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Remove clears the value stored under key and returns it.
// Nodes left without a value are not pruned.
func (t *Trie[V]) Remove(key string) (V, bool) {
	var zero V
	n := t.find(key)
	if n == nil || !n.hasValue {
		return zero, false
	}
	value := n.value
	n.value = zero
	n.hasValue = false
	t.size--
	return value, true
}

// Len returns the number of keys holding a value.
func (t *Trie[V]) Len() int {
	return t.size
}

// FindShortestMatch returns the shortest non-empty key that is a prefix of text.
func (t *Trie[V]) FindShortestMatch(text string) (string, V, bool) {
	end, n := t.root.findClosestValue(text)
	if n == nil {
		var zero V
		return "", zero, false
	}
	return text[:end], n.value, true
}

// FindLongestMatch returns the longest non-empty key that is a prefix of text.
// A key that is a prefix of a longer key never shadows it, even when the
// nodes between the two hold no value.
func (t *Trie[V]) FindLongestMatch(text string) (string, V, bool) {
	var (
		last *node[V]
		end  int
	)
	n := &t.root
	for {
		consumed, next := n.findClosestValue(text[end:])
		if next == nil {
			break
		}
		end += consumed
		n = next
		last = next
	}
	if last == nil {
		var zero V
		return "", zero, false
	}
	return text[:end], last.value, true
}

func (t *Trie[V]) find(key string) *node[V] {
	n := &t.root
	for _, ch := range key {
		child, ok := n.children[ch]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// findClosestValue walks key from n and stops at the first descendant that
// holds a value, returning the number of bytes consumed to reach it.
func (n *node[V]) findClosestValue(key string) (int, *node[V]) {
	current := n
	for i := 0; i < len(key); {
		ch, width := utf8.DecodeRuneInString(key[i:])
		child, ok := current.children[ch]
		if !ok {
			return 0, nil
		}
		i += width
		if child.hasValue {
			return i, child
		}
		current = child
	}
	return 0, nil
}
