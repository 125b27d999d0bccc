package catalog

import "pehlione.com/catalogadmin/internal/backend"

type CategoryNode struct {
	backend.Category
	Children []*CategoryNode `json:"children"`
}

// CategoryRow is one line of the flattened tree. Level 0 is a root.
type CategoryRow struct {
	backend.Category
	Level int `json:"level"`
}

// BuildTree nests categories under their parents, keeping list order among
// siblings. A category whose parent is missing becomes a root.
func BuildTree(list []backend.Category) []*CategoryNode {
	nodes := make(map[int64]*CategoryNode, len(list))
	order := make([]*CategoryNode, 0, len(list))
	for _, c := range list {
		if _, dup := nodes[c.ID]; dup {
			continue
		}
		n := &CategoryNode{Category: c, Children: []*CategoryNode{}}
		nodes[c.ID] = n
		order = append(order, n)
	}

	roots := []*CategoryNode{}
	for _, n := range order {
		if n.ParentID == 0 || n.ParentID == n.ID {
			roots = append(roots, n)
			continue
		}
		if p, ok := nodes[n.ParentID]; ok && !descends(nodes, p, n.ID) {
			p.Children = append(p.Children, n)
			continue
		}
		roots = append(roots, n)
	}
	return roots
}

// descends reports whether p has id among its ancestors (including itself).
// Linking such a node would close a cycle.
func descends(nodes map[int64]*CategoryNode, p *CategoryNode, id int64) bool {
	seen := map[int64]bool{}
	for cur := p; cur != nil; {
		if cur.ID == id {
			return true
		}
		if seen[cur.ID] || cur.ParentID == 0 {
			return false
		}
		seen[cur.ID] = true
		cur = nodes[cur.ParentID]
	}
	return false
}

// Flatten walks the tree depth first.
func Flatten(roots []*CategoryNode) []CategoryRow {
	var out []CategoryRow
	var walk func(ns []*CategoryNode, level int)
	walk = func(ns []*CategoryNode, level int) {
		for _, n := range ns {
			out = append(out, CategoryRow{Category: n.Category, Level: level})
			walk(n.Children, level+1)
		}
	}
	walk(roots, 0)
	return out
}
