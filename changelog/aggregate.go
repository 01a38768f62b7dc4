package changelog

import (
	"sort"

	"github.com/ryclarke/changelog-tool/scm"
)

// Tree is the version → product → change-type grouping of classified merge
// requests. Cells are created lazily; every record appears in exactly one
// cell, and records within a cell keep the order they were supplied in.
type Tree map[string]map[string]map[string][]*scm.MergeRequest

// Aggregate classifies each record and inserts it into the tree, skipping
// records the classifier excludes. Input order is preserved within each cell.
func Aggregate(records []*scm.MergeRequest, classifier *Classifier) Tree {
	tree := make(Tree)

	for _, record := range records {
		classification, ok := classifier.Classify(record)
		if !ok {
			continue
		}

		tree.insert(classification, record)
	}

	return tree
}

func (t Tree) insert(c Classification, mr *scm.MergeRequest) {
	if _, ok := t[c.Version]; !ok {
		t[c.Version] = make(map[string]map[string][]*scm.MergeRequest)
	}

	if _, ok := t[c.Version][c.Product]; !ok {
		t[c.Version][c.Product] = make(map[string][]*scm.MergeRequest)
	}

	t[c.Version][c.Product][c.ChangeType] = append(t[c.Version][c.Product][c.ChangeType], mr)
}

// Versions returns the version headings in lexicographic order.
func (t Tree) Versions() []string {
	return sortedKeys(t)
}

// Products returns the product headings for a version in lexicographic order.
func (t Tree) Products(version string) []string {
	return sortedKeys(t[version])
}

// Types returns the change-type headings for a product in lexicographic order.
func (t Tree) Types(version, product string) []string {
	return sortedKeys(t[version][product])
}

// Records returns the merge requests in a cell, in supplied order.
func (t Tree) Records(version, product, changeType string) []*scm.MergeRequest {
	return t[version][product][changeType]
}

// Count returns the total number of records under a (version, product) pair.
func (t Tree) Count(version, product string) int {
	var total int

	for _, records := range t[version][product] {
		total += len(records)
	}

	return total
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
