package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// subcategoryNone is the sentinel value in the categories index marking a
// category with no subcategory. It is collapsed to a nil entry in the tree.
const subcategoryNone = "None"

type termsBucket struct {
	Key           string      `json:"key"`
	Categories    *aggsResult `json:"categories,omitempty"`
	Subcategories *aggsResult `json:"subcategories,omitempty"`
}

type aggsResult struct {
	Buckets []termsBucket `json:"buckets"`
}

type taxonomyResponse struct {
	Aggregations struct {
		Supercategories aggsResult `json:"supercategories"`
	} `json:"aggregations"`
}

// FetchTaxonomy retrieves the full three-level hierarchy from the
// categories index via a nested terms aggregation.
//
// Each level is capped at the configured aggregation size; vocabularies
// larger than the cap are silently truncated. Subcategory buckets whose key
// is the "None" sentinel become nil entries in the tree.
func (c *Client) FetchTaxonomy(ctx context.Context) (Taxonomy, error) {
	body := map[string]interface{}{
		"size": 0,
		"aggs": map[string]interface{}{
			"supercategories": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": "SUPERCATEGORY.keyword",
					"size":  c.cfg.AggregationSize,
				},
				"aggs": map[string]interface{}{
					"categories": map[string]interface{}{
						"terms": map[string]interface{}{
							"field": "CATEGORY.keyword",
							"size":  c.cfg.AggregationSize,
						},
						"aggs": map[string]interface{}{
							"subcategories": map[string]interface{}{
								"terms": map[string]interface{}{
									"field": "SUBCATEGORY.keyword",
									"size":  c.cfg.AggregationSize,
								},
							},
						},
					},
				},
			},
		},
	}

	var parsed taxonomyResponse
	if err := c.search(ctx, c.cfg.CategoriesIndex, body, &parsed); err != nil {
		return nil, err
	}

	tree := make(Taxonomy, len(parsed.Aggregations.Supercategories.Buckets))
	for _, super := range parsed.Aggregations.Supercategories.Buckets {
		if super.Categories == nil {
			continue
		}
		categories := make(map[string][]*string, len(super.Categories.Buckets))
		for _, cat := range super.Categories.Buckets {
			var subs []*string
			if cat.Subcategories != nil {
				subs = make([]*string, 0, len(cat.Subcategories.Buckets))
				for _, sub := range cat.Subcategories.Buckets {
					if sub.Key == subcategoryNone {
						subs = append(subs, nil)
						continue
					}
					name := sub.Key
					subs = append(subs, &name)
				}
			}
			categories[cat.Key] = subs
		}
		if len(categories) > 0 {
			tree[super.Key] = categories
		}
	}

	return tree, nil
}

// search executes a JSON search request against the given index and decodes
// the response body into out.
func (c *Client) search(ctx context.Context, index string, body interface{}, out interface{}) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return fmt.Errorf("search: failed to encode query: %w", err)
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(index),
		c.es.Search.WithBody(&buf),
	)
	if err != nil {
		return fmt.Errorf("search: query against %q failed: %w", index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("search: index %q returned %s: %s", index, res.Status(), msg)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("search: failed to decode response from %q: %w", index, err)
	}
	return nil
}
