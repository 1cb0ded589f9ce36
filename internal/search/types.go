package search

// Taxonomy is the three-level hierarchy fetched from the categories index:
// supercategory → category → ordered subcategories.
//
// A nil entry in the subcategory slice means the category has an explicit
// "no subcategory" leaf; the sentinel string "None" from the index collapses
// to nil and is never duplicated as a string value.
type Taxonomy map[string]map[string][]*string

// Empty reports whether the taxonomy carries no supercategories at all.
func (t Taxonomy) Empty() bool {
	return len(t) == 0
}

// Example is a labelled nearest-neighbour match from the examples index.
// Score is the similarity metric reported by the index; it is not
// normalised to [0,1].
type Example struct {
	Title         string  `json:"TITLE"`
	Message       string  `json:"MESSAGE"`
	Supercategory string  `json:"SUPERCATEGORY"`
	Category      string  `json:"CATEGORY"`
	Subcategory   string  `json:"SUBCATEGORY"`
	Score         float64 `json:"_score"`
}
