package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// Entry is a taxonomy document as stored in the categories index. Field
// names match the keyword fields the taxonomy aggregation reads.
type Entry struct {
	Supercategory string    `json:"SUPERCATEGORY"`
	Category      string    `json:"CATEGORY"`
	Subcategory   string    `json:"SUBCATEGORY"`
	Description   string    `json:"DESCRIPTION"`
	Embedding     []float64 `json:"embedding,omitempty"`
}

// IndexEntry stores a taxonomy entry under the given document id.
// An empty id lets the index assign one; the assigned id is returned.
func (c *Client) IndexEntry(ctx context.Context, id string, entry Entry) (string, error) {
	payload, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("search: failed to encode entry: %w", err)
	}

	res, err := c.es.Index(
		c.cfg.CategoriesIndex,
		bytes.NewReader(payload),
		c.es.Index.WithContext(ctx),
		c.es.Index.WithDocumentID(id),
	)
	if err != nil {
		return "", fmt.Errorf("search: failed to index entry: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("search: index entry returned %s: %s", res.Status(), msg)
	}

	var parsed struct {
		ID string `json:"_id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("search: failed to decode index response: %w", err)
	}
	return parsed.ID, nil
}

// UpdateEntry applies a partial update to the taxonomy entry with the given id.
func (c *Client) UpdateEntry(ctx context.Context, id string, entry Entry) error {
	payload, err := json.Marshal(map[string]interface{}{"doc": entry})
	if err != nil {
		return fmt.Errorf("search: failed to encode update: %w", err)
	}

	res, err := c.es.Update(
		c.cfg.CategoriesIndex,
		id,
		bytes.NewReader(payload),
		c.es.Update.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: failed to update entry %q: %w", id, err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return ErrEntryNotFound
	}
	if res.IsError() {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("search: update entry returned %s: %s", res.Status(), msg)
	}
	return nil
}

// DeleteEntry removes the taxonomy entry with the given id.
func (c *Client) DeleteEntry(ctx context.Context, id string) error {
	res, err := c.es.Delete(
		c.cfg.CategoriesIndex,
		id,
		c.es.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: failed to delete entry %q: %w", id, err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return ErrEntryNotFound
	}
	if res.IsError() {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("search: delete entry returned %s: %s", res.Status(), msg)
	}
	return nil
}
