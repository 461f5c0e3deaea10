package siddur

import "sort"

// NavItem is a leaf of the navigation tree. Applicable records the item's
// own predicate result even when the tree was built without the
// applicable-only filter, so a view can show "not applicable today" items
// annotated rather than hidden.
type NavItem struct {
	Item       Item `json:"item"`
	Applicable bool `json:"applicable"`
}

// NavBucket groups the surviving items of one bucket.
type NavBucket struct {
	Bucket Bucket    `json:"bucket"`
	Items  []NavItem `json:"items"`
}

// NavService groups the surviving buckets of one service.
type NavService struct {
	Service Service     `json:"service"`
	Buckets []NavBucket `json:"buckets"`
}

// NavCategory groups the surviving services of one category.
type NavCategory struct {
	Category Category     `json:"category"`
	Services []NavService `json:"services"`
}

// Tree is the four-level browsable navigation structure.
type Tree struct {
	Categories []NavCategory `json:"categories"`
}

// BuildNavigation filters the flat catalog by tradition, display mode, and
// (optionally) applicability, and regroups it into the navigation tree.
// Empty branches are pruned: a bucket needs at least one surviving item, a
// service at least one surviving bucket, a category at least one surviving
// service. Entries referencing a missing parent are dropped silently; the
// catalog is static, author-validated data and a partial tree beats a hard
// failure. Ordering at every level is by the declared order, stable on ties.
func BuildNavigation(
	catalog *Catalog,
	nusach Nusach,
	mode Mode,
	applicableOnly bool,
	ctx *FilterContext,
) *Tree {
	// Parent identity is resolved once per build.
	buckets := make(map[string]Bucket, len(catalog.Buckets))
	for _, b := range catalog.Buckets {
		buckets[b.ID] = b
	}
	services := make(map[string]Service, len(catalog.Services))
	for _, s := range catalog.Services {
		services[s.ID] = s
	}
	categories := make(map[string]Category, len(catalog.Categories))
	for _, c := range catalog.Categories {
		categories[c.ID] = c
	}

	passes := func(e Entry) bool {
		return hasNusach(e.Nusachim, nusach) && ModeAllows(e.Importance, mode)
	}

	// Items first; buckets, services, and categories only exist in the
	// output by virtue of surviving children.
	itemsByBucket := make(map[string][]NavItem)
	for _, item := range catalog.Items {
		if !passes(item.Entry) {
			continue
		}
		if _, ok := buckets[item.BucketID]; !ok {
			continue // dangling reference
		}
		applicable := Applies(item.Applicability, ctx)
		if applicableOnly && !applicable {
			continue
		}
		itemsByBucket[item.BucketID] = append(itemsByBucket[item.BucketID], NavItem{
			Item:       item,
			Applicable: applicable,
		})
	}

	bucketsByService := make(map[string][]NavBucket)
	for _, b := range catalog.Buckets {
		items := itemsByBucket[b.ID]
		if len(items) == 0 {
			continue
		}
		if !passes(b.Entry) || !Applies(b.Applicability, ctx) {
			continue
		}
		if _, ok := services[b.ServiceID]; !ok {
			continue
		}
		sortByOrder(items, func(n NavItem) int { return n.Item.Order })
		bucketsByService[b.ServiceID] = append(bucketsByService[b.ServiceID], NavBucket{
			Bucket: b,
			Items:  items,
		})
	}

	servicesByCategory := make(map[string][]NavService)
	for _, s := range catalog.Services {
		bs := bucketsByService[s.ID]
		if len(bs) == 0 {
			continue
		}
		if !passes(s.Entry) || !Applies(s.Applicability, ctx) {
			continue
		}
		if _, ok := categories[s.CategoryID]; !ok {
			continue
		}
		sortByOrder(bs, func(n NavBucket) int { return n.Bucket.Order })
		servicesByCategory[s.CategoryID] = append(servicesByCategory[s.CategoryID], NavService{
			Service: s,
			Buckets: bs,
		})
	}

	tree := &Tree{}
	for _, c := range catalog.Categories {
		ss := servicesByCategory[c.ID]
		if len(ss) == 0 {
			continue
		}
		if !passes(c.Entry) || !Applies(c.Applicability, ctx) {
			continue
		}
		sortByOrder(ss, func(n NavService) int { return n.Service.Order })
		tree.Categories = append(tree.Categories, NavCategory{
			Category: c,
			Services: ss,
		})
	}
	sortByOrder(tree.Categories, func(n NavCategory) int { return n.Category.Order })

	return tree
}

func hasNusach(set []Nusach, want Nusach) bool {
	for _, n := range set {
		if n == want {
			return true
		}
	}
	return false
}

// sortByOrder sorts stably by the declared order, preserving catalog
// encounter order on ties.
func sortByOrder[T any](s []T, order func(T) int) {
	sort.SliceStable(s, func(i, j int) bool { return order(s[i]) < order(s[j]) })
}
