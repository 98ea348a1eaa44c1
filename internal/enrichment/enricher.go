// Package enrichment turns one entity into a structured college record by
// querying the LLM service and validating its reply.
package enrichment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/college-enricher/internal/llm"
	"github.com/jonathan/college-enricher/internal/observability"
	"github.com/jonathan/college-enricher/internal/prompts"
	"github.com/jonathan/college-enricher/internal/schemas"
	"github.com/jonathan/college-enricher/internal/types"
)

// Enricher issues one enrichment request per entity. It performs no
// retries; a failed entity is simply reported to the caller.
type Enricher struct {
	client  llm.Client
	printer *observability.Printer
}

// NewEnricher creates an Enricher over the given LLM client.
func NewEnricher(client llm.Client, printer *observability.Printer) *Enricher {
	return &Enricher{client: client, printer: printer}
}

// Fetch requests the full record for one entity. It returns either a
// validated record or a typed failure: *APICallError for transport-level
// faults, *ParseError for replies that do not decode into the schema.
func (e *Enricher) Fetch(ctx context.Context, entity types.Entity) (*types.CollegeRecord, error) {
	prompt := buildEnrichmentPrompt(entity)

	result, err := e.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &APICallError{
			Message: fmt.Sprintf("enrichment request for %q failed", entity.Name),
			Cause:   err,
		}
	}

	if result.Truncated {
		// Truncation does not always break the payload, so parsing proceeds.
		e.printer.Warnf("response for %s was cut off at the output token limit; attempting to parse anyway", entity.Name)
	}

	text := llm.CleanJSONBlock(result.Text)

	var record types.CollegeRecord
	if err := json.Unmarshal([]byte(text), &record); err != nil {
		return nil, newParseError("response is not a valid record payload", err, text, result.Truncated)
	}

	if err := schemas.ValidateCollegeRecord(text); err != nil {
		return nil, newParseError("response failed schema validation", err, text, result.Truncated)
	}

	if err := record.Validate(); err != nil {
		return nil, newParseError("response values out of range", err, text, result.Truncated)
	}

	// The service is not trusted to echo the URL correctly.
	record.URL = entity.URL

	return &record, nil
}

// buildEnrichmentPrompt constructs the prompt for one entity.
func buildEnrichmentPrompt(entity types.Entity) string {
	template := prompts.MustGet("enrichment.json", "enrich-college")
	return prompts.Format(template, map[string]string{
		"CollegeName": entity.Name,
		"URL":         entity.URL,
	})
}
