package classifier

import (
	"context"
	"fmt"

	"github.com/semcat/semcat/internal/search"
)

// Classifier assigns taxonomy labels to queries by prompting an external
// LLM completion service and parsing its fixed-format answer.
//
// Classifier implements the Labeler interface.
type Classifier struct {
	llm    *completionClient
	logger Logger
}

// New constructs a Classifier from Config.
// Missing fields are filled with package defaults before validation.
func New(cfg Config, logger Logger) (*Classifier, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.HTTPTimeoutS == 0 {
		cfg.HTTPTimeoutS = DefaultHTTPTimeoutS
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("classifier: invalid config: %w", err)
	}

	return &Classifier{
		llm:    newCompletionClient(cfg),
		logger: logger,
	}, nil
}

// Classify builds the instruction prompt from the taxonomy, the retrieved
// examples and the query, makes a single completion call, and parses the
// response into a label triple.
//
// A nil examples slice means "no relevant examples"; the prompt then omits
// the examples section entirely. Any call-level failure yields the sentinel
// triple rather than an error: classification uncertainty is modelled as
// data, and the pipeline treats the result as a successful outcome either
// way.
func (c *Classifier) Classify(ctx context.Context, query string, taxonomy search.Taxonomy, examples []search.Example) Result {
	prompt := buildPrompt(query, taxonomy, examples)

	response, usage, err := c.llm.chat(ctx, systemPrompt, prompt)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("completion call failed, returning sentinel labels", err, map[string]interface{}{
				"query": query,
			})
		}
		return SentinelResult()
	}

	if c.logger != nil {
		c.logger.Info("completion received", nil, map[string]interface{}{
			"prompt_tokens":     usage.PromptTokens,
			"completion_tokens": usage.CompletionTokens,
			"total_tokens":      usage.TotalTokens,
		})
		c.logger.Debug("raw completion response", nil, map[string]interface{}{
			"response": response,
		})
	}

	result := parseResponse(response)

	if c.logger != nil {
		c.logger.Info("classification parsed", nil, map[string]interface{}{
			"supercategory": result.Supercategory,
			"category":      result.Category,
			"subcategory":   result.Subcategory,
		})
	}

	return result
}
