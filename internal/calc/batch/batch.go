package batch

import (
	"fmt"

	design "Dogbone/internal/calc/design"
)

type Input struct {
	Items []design.Input `json:"items"`
}

type Result struct {
	Results []design.Result `json:"results"`
}

// Calculate evaluates a set of parameter sets on the lightweight path
// (profile, validation, analytical estimate). Heavy Boolean builds are
// per-design operations, not batch ones.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]design.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := design.Calculate(item)
		if err != nil {
			return Result{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
