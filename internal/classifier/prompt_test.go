package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/semcat/semcat/internal/search"
)

func sampleTaxonomy() search.Taxonomy {
	sub := "SHARPENER"
	return search.Taxonomy{
		"5.APPLIANCES / MACHINES": {
			"CUTTING MACHINES": {&sub, nil},
		},
	}
}

func TestBuildPrompt_ContainsTaxonomyAndQuery(t *testing.T) {
	prompt := buildPrompt("where do I find a grinder", sampleTaxonomy(), nil)

	assert.Contains(t, prompt, "5.APPLIANCES / MACHINES")
	assert.Contains(t, prompt, "CUTTING MACHINES")
	assert.Contains(t, prompt, "SHARPENER")
	assert.Contains(t, prompt, "where do I find a grinder")
}

func TestBuildPrompt_MandatesOutputFormat(t *testing.T) {
	prompt := buildPrompt("q", sampleTaxonomy(), nil)

	assert.Contains(t, prompt, "Supercategory:")
	assert.Contains(t, prompt, "Category:")
	assert.Contains(t, prompt, "Sub-Category:")
	assert.Contains(t, prompt, "Output format (strictly required)")
}

func TestBuildPrompt_ExamplesSectionOnlyWhenPresent(t *testing.T) {
	examples := []search.Example{
		{Title: "grinder question", Message: "need a grinder", Score: 0.95},
	}

	withExamples := buildPrompt("q", sampleTaxonomy(), examples)
	assert.Contains(t, withExamples, "Examples related to the user query")
	assert.Contains(t, withExamples, "grinder question")

	// nil examples means the section is omitted entirely, not rendered
	// empty.
	withoutExamples := buildPrompt("q", sampleTaxonomy(), nil)
	assert.NotContains(t, withoutExamples, "Examples related to the user query")
}

func TestBuildPrompt_EmptyTaxonomyStillRenders(t *testing.T) {
	prompt := buildPrompt("q", search.Taxonomy{}, nil)

	assert.True(t, strings.Contains(prompt, "{}"))
	assert.Contains(t, prompt, "Predefined lists (authoritative)")
}
