// Package tagindex resolves free-text tag category and subcategory names to
// the numeric identifiers of the controlled vocabulary.
package tagindex

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ResolvedTag is the numeric form of a tag mention.
type ResolvedTag struct {
	TagID int
	SubID int
}

// Index holds the category and subcategory name mappings.
type Index struct {
	// categories maps category names to ids
	categories map[string]int

	// subcategories maps category name -> subcategory name -> id
	subcategories map[string]map[string]int

	// globalSubs maps subcategory names to ids across all categories,
	// used as a fallback when a mention pairs a subcategory with a
	// category it is not filed under
	globalSubs map[string]int
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		categories:    make(map[string]int),
		subcategories: make(map[string]map[string]int),
		globalSubs:    make(map[string]int),
	}
}

// Load reads the vocabulary reference file. The file can be in a couple of
// formats - we try to detect and parse it.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tag index file: %w", err)
	}

	idx := NewIndex()

	// Try parsing as an array of category objects
	var arrayFormat []struct {
		ID            any    `json:"id"`
		Name          string `json:"name"`
		Subcategories []struct {
			ID   any    `json:"id"`
			Name string `json:"name"`
		} `json:"subcategories"`
	}

	if err := json.Unmarshal(data, &arrayFormat); err == nil {
		for _, category := range arrayFormat {
			name := strings.TrimSpace(category.Name)
			id, ok := parseID(category.ID)
			if name == "" || !ok {
				continue
			}
			idx.AddCategory(name, id)
			for _, sub := range category.Subcategories {
				subName := strings.TrimSpace(sub.Name)
				subID, ok := parseSubID(sub.ID)
				if subName == "" || !ok {
					continue
				}
				idx.AddSubcategory(name, subName, subID)
			}
		}
		return idx, nil
	}

	// Try parsing as an object map: {"Category": {"id": 1, "subcategories": {"Sub": 2}}}
	var mapFormat map[string]struct {
		ID            any            `json:"id"`
		Subcategories map[string]any `json:"subcategories"`
	}
	if err := json.Unmarshal(data, &mapFormat); err == nil {
		for name, category := range mapFormat {
			name = strings.TrimSpace(name)
			id, ok := parseID(category.ID)
			if name == "" || !ok {
				continue
			}
			idx.AddCategory(name, id)
			for subName, subID := range category.Subcategories {
				if parsed, ok := parseSubID(subID); ok {
					idx.AddSubcategory(name, strings.TrimSpace(subName), parsed)
				}
			}
		}
		return idx, nil
	}

	return nil, fmt.Errorf("could not parse tag index file format")
}

// Resolve maps a (category, subcategory) name pair to its numeric ids.
// Names are matched exactly after whitespace trimming; case is significant.
// A missing name is a normal outcome, not an error.
func (idx *Index) Resolve(category, subcategory string) (ResolvedTag, bool) {
	category = strings.TrimSpace(category)
	subcategory = strings.TrimSpace(subcategory)

	tagID, ok := idx.categories[category]
	if !ok {
		return ResolvedTag{}, false
	}

	if subs, ok := idx.subcategories[category]; ok {
		if subID, ok := subs[subcategory]; ok {
			return ResolvedTag{TagID: tagID, SubID: subID}, true
		}
	}
	if subID, ok := idx.globalSubs[subcategory]; ok {
		return ResolvedTag{TagID: tagID, SubID: subID}, true
	}

	return ResolvedTag{}, false
}

// AddCategory adds a category to the index.
func (idx *Index) AddCategory(name string, id int) {
	idx.categories[name] = id
}

// AddSubcategory adds a subcategory under a category.
func (idx *Index) AddSubcategory(category, name string, id int) {
	subs, ok := idx.subcategories[category]
	if !ok {
		subs = make(map[string]int)
		idx.subcategories[category] = subs
	}
	subs[name] = id
	idx.globalSubs[name] = id
}

// CategoryCount returns the number of categories in the index.
func (idx *Index) CategoryCount() int {
	if idx == nil {
		return 0
	}
	return len(idx.categories)
}

// SubcategoryCount returns the number of distinct subcategory names.
func (idx *Index) SubcategoryCount() int {
	if idx == nil {
		return 0
	}
	return len(idx.globalSubs)
}

// parseID accepts numeric or string ids.
func parseID(v any) (int, bool) {
	switch id := v.(type) {
	case float64:
		return int(id), true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(id)); err == nil {
			return n, true
		}
	}
	return 0, false
}

// parseSubID accepts numeric ids and dotted strings like "8.2", where the
// part after the dot is the subcategory id.
func parseSubID(v any) (int, bool) {
	switch id := v.(type) {
	case float64:
		return int(id), true
	case string:
		s := strings.TrimSpace(id)
		if dot := strings.IndexByte(s, '.'); dot >= 0 {
			s = s[dot+1:]
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
	}
	return 0, false
}
