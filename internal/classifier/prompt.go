package classifier

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/semcat/semcat/internal/search"
)

// systemPrompt pins the model into its classifier role.
const systemPrompt = "You are a strict classifier. Classify the query into one of the existing supercategories, categories, and subcategories."

// buildPrompt assembles the instruction prompt for a classification call.
//
// The prompt states the hierarchy rules, enumerates the authoritative
// taxonomy, carries the user query, optionally carries the retrieved
// examples, and mandates the fixed three-line output format the parser
// expects. The examples section is emitted only when examples is non-nil;
// an empty section would invite the model to anchor on nothing.
func buildPrompt(query string, taxonomy search.Taxonomy, examples []search.Example) string {
	taxonomyJSON, err := json.MarshalIndent(taxonomy, "", "  ")
	if err != nil {
		taxonomyJSON = []byte("{}")
	}

	var b strings.Builder

	b.WriteString("Your goal is to analyse a list of categories with subcategories organised in a strict hierarchy:\n\n")
	b.WriteString("1. **Supercategories**: each supercategory contains multiple categories.\n")
	b.WriteString("2. **Categories**: each category contains multiple subcategories.\n\n")
	b.WriteString("**Your task**, given a user query, is to:\n")
	b.WriteString("1. **Recognise the supercategory, category and subcategory structure** from the predefined lists.\n")
	b.WriteString("2. **Pick the most relevant option** from the predefined lists based on the user query.\n")
	b.WriteString("3. **Do not pick the first option** in the hierarchy; pick the option most relevant to the context or keywords of the query.\n")
	b.WriteString("4. If no option is relevant, answer \"None\".\n\n")

	b.WriteString("**Predefined lists (authoritative):**\n")
	b.Write(taxonomyJSON)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "**User query:** %s\n\n", query)

	if examples != nil {
		examplesJSON, err := json.MarshalIndent(examples, "", "  ")
		if err != nil {
			examplesJSON = []byte("[]")
		}
		b.WriteString("**Examples related to the user query. Check whether they help you classify:**\n")
		b.Write(examplesJSON)
		b.WriteString("\n\n")
	}

	b.WriteString("**Output format (strictly required):**\n")
	b.WriteString("- Supercategory: [one of the predefined supercategories if relevant; otherwise \"None\"]\n")
	b.WriteString("- Category: [one of the predefined categories under the chosen supercategory if relevant; otherwise \"None\"]\n")
	b.WriteString("- Sub-Category: [one of the predefined subcategories under the chosen category if relevant; otherwise \"None\"]\n")

	return b.String()
}
