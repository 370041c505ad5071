package extract

import (
	"sort"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/vrg/dendrogram"
)

// nodeSet is the content of one bucket.
type nodeSet map[dendrogram.NodeID]struct{}

// buckets indexes internal tree nodes by score. The red-black tree keeps
// scores ordered so the lowest bucket is found first; score maps each node
// back to its bucket. A node is in at most one bucket.
type buckets struct {
	tree  *redblacktree.Tree
	score map[dendrogram.NodeID]int
}

func newBuckets() *buckets {
	return &buckets{
		tree:  redblacktree.NewWithIntComparator(),
		score: make(map[dendrogram.NodeID]int),
	}
}

// insert puts id into the bucket for score, moving it if already indexed.
func (b *buckets) insert(id dendrogram.NodeID, score int) {
	b.remove(id)
	var set nodeSet
	if v, ok := b.tree.Get(score); ok {
		set = v.(nodeSet)
	} else {
		set = make(nodeSet)
		b.tree.Put(score, set)
	}
	set[id] = struct{}{}
	b.score[id] = score
}

// remove drops id from its bucket and reports whether it was indexed.
// Empty buckets are deleted.
func (b *buckets) remove(id dendrogram.NodeID) bool {
	s, ok := b.score[id]
	if !ok {
		return false
	}
	if v, found := b.tree.Get(s); found {
		set := v.(nodeSet)
		delete(set, id)
		if len(set) == 0 {
			b.tree.Remove(s)
		}
	}
	delete(b.score, id)

	return true
}

func (b *buckets) scoreOf(id dendrogram.NodeID) (int, bool) {
	s, ok := b.score[id]
	return s, ok
}

// len returns the number of indexed nodes.
func (b *buckets) len() int { return len(b.score) }

// ascend calls fn for every bucket in ascending score order with the bucket's
// node IDs sorted ascending, until fn returns false. fn must not mutate b.
func (b *buckets) ascend(fn func(score int, ids []dendrogram.NodeID) bool) {
	it := b.tree.Iterator()
	for it.Next() {
		set := it.Value().(nodeSet)
		ids := make([]dendrogram.NodeID, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		if !fn(it.Key().(int), ids) {
			return
		}
	}
}
