// Package thread reconstructs the reply tree of a question from its flat
// answer set. Answers are stored flat with a nullable parent pointer; the
// forest only exists in memory, built in a single grouping pass.
package thread

import (
	"sort"

	"github.com/querytoheal/health-qa-api/internal/models"
)

// Sort selects the ordering applied within each level of the tree.
type Sort string

const (
	SortNewest Sort = "newest"
	SortOldest Sort = "oldest"
	SortBest   Sort = "best"
)

// ParseSort maps a query-string value to a Sort, defaulting to newest.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortOldest:
		return SortOldest
	case SortBest:
		return SortBest
	default:
		return SortNewest
	}
}

// Node is one answer in a reply tree.
type Node struct {
	Answer  models.Answer
	Replies []*Node
}

// Build assembles the flat answers of one question into a reply forest.
// Children are grouped under their parent by ID; an answer whose parent is
// not part of the input is promoted to a root rather than dropped. Each
// level is ordered by the given sort.
func Build(answers []models.Answer, by Sort) []*Node {
	nodes := make(map[string]*Node, len(answers))
	for i := range answers {
		nodes[answers[i].ID] = &Node{Answer: answers[i]}
	}

	var roots []*Node
	for i := range answers {
		node := nodes[answers[i].ID]
		if pid := answers[i].ParentID; pid != nil {
			if parent, ok := nodes[*pid]; ok && parent != node {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	sortForest(roots, by)
	return roots
}

// Depth returns the ancestor count of the given answer within the flat set:
// 0 for a top-level answer, 1 for a direct reply, and so on.
func Depth(answers []models.Answer, id string) int {
	byID := make(map[string]models.Answer, len(answers))
	for _, a := range answers {
		byID[a.ID] = a
	}

	depth := 0
	current, ok := byID[id]
	for ok && current.ParentID != nil {
		current, ok = byID[*current.ParentID]
		if !ok || depth > len(answers) { // broken or cyclic chain
			break
		}
		depth++
	}
	return depth
}

func sortForest(nodes []*Node, by Sort) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return less(nodes[i].Answer, nodes[j].Answer, by)
	})
	for _, node := range nodes {
		sortForest(node.Replies, by)
	}
}

func less(a, b models.Answer, by Sort) bool {
	switch by {
	case SortOldest:
		return a.CreatedAt.Before(b.CreatedAt)
	case SortBest:
		if a.Upvotes != b.Upvotes {
			return a.Upvotes > b.Upvotes
		}
		return a.CreatedAt.After(b.CreatedAt)
	default:
		return a.CreatedAt.After(b.CreatedAt)
	}
}
