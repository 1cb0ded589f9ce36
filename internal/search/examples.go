package search

import (
	"context"
)

type knnHit struct {
	Score  float64 `json:"_score"`
	Source struct {
		Title         string `json:"TITLE"`
		Message       string `json:"MESSAGE"`
		Supercategory string `json:"SUPERCATEGORY"`
		Category      string `json:"CATEGORY"`
		Subcategory   string `json:"SUBCATEGORY"`
	} `json:"_source"`
}

type knnResponse struct {
	Hits struct {
		Hits []knnHit `json:"hits"`
	} `json:"hits"`
}

// SearchExamples performs an approximate k-nearest-neighbour query against
// the examples index using the query embedding.
//
// It returns the raw matches with their similarity scores; threshold
// filtering is the caller's concern so the cut-off stays configurable in one
// place.
func (c *Client) SearchExamples(ctx context.Context, embedding []float64) ([]Example, error) {
	body := map[string]interface{}{
		"knn": map[string]interface{}{
			"field":          "embedding",
			"query_vector":   embedding,
			"k":              c.cfg.KNNSize,
			"num_candidates": c.cfg.KNNCandidates,
		},
	}

	var parsed knnResponse
	if err := c.search(ctx, c.cfg.ExamplesIndex, body, &parsed); err != nil {
		return nil, err
	}

	examples := make([]Example, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		examples = append(examples, Example{
			Title:         hit.Source.Title,
			Message:       hit.Source.Message,
			Supercategory: hit.Source.Supercategory,
			Category:      hit.Source.Category,
			Subcategory:   hit.Source.Subcategory,
			Score:         hit.Score,
		})
	}

	if c.logger != nil {
		c.logger.Info("vector search completed", nil, map[string]interface{}{
			"hits": len(examples),
		})
	}

	return examples, nil
}
