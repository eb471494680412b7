package primary

type trieNode struct {
	children map[rune]*trieNode
	isEnd    bool
}

// trie holds the term vocabulary for prefix expansion.
type trie struct {
	root *trieNode
}

func newTrie() *trie {
	return &trie{root: &trieNode{children: make(map[rune]*trieNode)}}
}

func (t *trie) insert(term string) {
	node := t.root
	for _, ch := range term {
		next, ok := node.children[ch]
		if !ok {
			next = &trieNode{children: make(map[rune]*trieNode)}
			node.children[ch] = next
		}
		node = next
	}
	node.isEnd = true
}

// withPrefix returns up to limit terms starting with prefix, the prefix
// itself excluded. limit <= 0 means no cap.
func (t *trie) withPrefix(prefix string, limit int) []string {
	node := t.root
	for _, ch := range prefix {
		next, ok := node.children[ch]
		if !ok {
			return nil
		}
		node = next
	}

	var results []string
	var walk func(n *trieNode, acc string)
	walk = func(n *trieNode, acc string) {
		if limit > 0 && len(results) >= limit {
			return
		}
		if n.isEnd && acc != prefix {
			results = append(results, acc)
		}
		for ch, child := range n.children {
			walk(child, acc+string(ch))
			if limit > 0 && len(results) >= limit {
				return
			}
		}
	}
	walk(node, prefix)
	return results
}
