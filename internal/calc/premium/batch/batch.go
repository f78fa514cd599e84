package batch

import (
	"fmt"

	basin "Clarifier/internal/calc/basin"
)

type BasinBatchInput struct {
	Items []basin.Request `json:"items"`
}

type BasinBatchResult struct {
	Results []basin.Response `json:"results"`
}

// Calculate sizes every scenario in order. One bad scenario fails the whole
// batch so callers never see a partially sized set.
func Calculate(in BasinBatchInput) (BasinBatchResult, error) {
	if len(in.Items) == 0 {
		return BasinBatchResult{}, fmt.Errorf("no items")
	}
	out := BasinBatchResult{Results: make([]basin.Response, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := basin.Design(item)
		if err != nil {
			return BasinBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
