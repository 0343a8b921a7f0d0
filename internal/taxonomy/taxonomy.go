// Package taxonomy provides the static skill reference data used for keyword
// extraction and gap analysis. The taxonomy is immutable after construction
// and safe for concurrent use; callers inject it rather than reaching for a
// package global so tests can supply custom taxonomies.
package taxonomy

import "strings"

// Subcategory is a named, ordered set of canonical skill terms (lower-cased).
type Subcategory struct {
	Name   string
	Skills []string
}

// Category groups related subcategories.
type Category struct {
	Name          string
	Subcategories []Subcategory
}

// Term is one flattened taxonomy entry.
type Term struct {
	Word        string
	Category    string
	Subcategory string
}

// Taxonomy is the category -> subcategory -> skills mapping. Lookups follow
// declaration order, so when source data repeats a term the first entry wins.
type Taxonomy struct {
	categories []Category
	terms      []Term
	byWord     map[string]Term
}

// New builds a Taxonomy from category data. Skill terms are lower-cased and
// trimmed; duplicate terms keep their first (category, subcategory) pair.
func New(categories []Category) *Taxonomy {
	t := &Taxonomy{
		categories: make([]Category, len(categories)),
		byWord:     make(map[string]Term),
	}
	copy(t.categories, categories)

	for _, cat := range categories {
		for _, sub := range cat.Subcategories {
			for _, skill := range sub.Skills {
				word := strings.ToLower(strings.TrimSpace(skill))
				if word == "" {
					continue
				}
				if _, seen := t.byWord[word]; seen {
					continue
				}
				term := Term{Word: word, Category: cat.Name, Subcategory: sub.Name}
				t.byWord[word] = term
				t.terms = append(t.terms, term)
			}
		}
	}

	return t
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	return defaultTaxonomy
}

// Terms returns all taxonomy entries in declaration order.
func (t *Taxonomy) Terms() []Term {
	out := make([]Term, len(t.terms))
	copy(out, t.terms)
	return out
}

// Resolve returns the (category, subcategory) pair for a term, first match
// wins. The lookup is case-insensitive.
func (t *Taxonomy) Resolve(word string) (category, subcategory string, ok bool) {
	term, found := t.byWord[strings.ToLower(strings.TrimSpace(word))]
	if !found {
		return "", "", false
	}
	return term.Category, term.Subcategory, true
}

// Contains reports whether the term exists in the taxonomy.
func (t *Taxonomy) Contains(word string) bool {
	_, _, ok := t.Resolve(word)
	return ok
}

// CategoryNames returns the category names in declaration order.
func (t *Taxonomy) CategoryNames() []string {
	names := make([]string, len(t.categories))
	for i, cat := range t.categories {
		names[i] = cat.Name
	}
	return names
}

// Len returns the number of distinct terms.
func (t *Taxonomy) Len() int {
	return len(t.terms)
}

var defaultTaxonomy = New(defaultCategories)
