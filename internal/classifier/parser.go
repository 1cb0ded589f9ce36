package classifier

import "strings"

// field identifies one of the three output fields.
type field int

const (
	fieldSupercategory field = iota
	fieldCategory
	fieldSubcategory
)

// labelAliases maps each output field to the label prefixes accepted for it.
// The list is data: new label wordings observed in model output are added
// here, never to the parsing logic. Matching happens after bullet markers
// and emphasis markup have been stripped, so entries only cover the plain
// spelling variants.
var labelAliases = map[field][]string{
	fieldSupercategory: {"Supercategory:", "Super-Category:"},
	fieldCategory:      {"Category:"},
	fieldSubcategory:   {"Sub-Category:", "Subcategory:", "Sub-category:"},
}

// parseResponse extracts the label triple from a completion response.
//
// The model is instructed to answer with three labelled lines, but in
// practice the response arrives with varying decoration: leading "-"
// bullets, ** emphasis around the labels, quotes around values, and
// unrelated prose before or after. The parser scans line by line, strips
// the decoration, and matches each line against the alias table. Fields the
// response never names keep the Sentinel — a partial response is accepted,
// not rejected wholesale.
func parseResponse(response string) Result {
	result := SentinelResult()

	for _, line := range strings.Split(strings.TrimSpace(response), "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "-"))
		line = strings.TrimSpace(strings.ReplaceAll(line, "**", ""))

		for f, aliases := range labelAliases {
			for _, label := range aliases {
				rest, ok := strings.CutPrefix(line, label)
				if !ok {
					continue
				}
				value := strings.Trim(strings.TrimSpace(rest), `"`)
				if value == "" {
					// A bare label keeps the Sentinel.
					continue
				}
				switch f {
				case fieldSupercategory:
					result.Supercategory = value
				case fieldCategory:
					result.Category = value
				case fieldSubcategory:
					result.Subcategory = value
				}
			}
		}
	}

	return result
}
