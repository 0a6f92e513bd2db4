//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package evalresult

import "sort"

// CalculateFinalScore combines per-datapoint, per-evaluator numeric results
// into one weighted dataset score plus per-evaluator averages.
//
// Non-numerical results are ignored. Duplicate results for the same
// (datapoint, evaluator) pair are averaged before being folded into the
// evaluator's cross-datapoint average. Evaluators without an explicit weight
// default to 1.0. An empty input yields (0.0, {}).
func CalculateFinalScore(results []*Result, opt ...Option) (float64, map[string]float64) {
	opts := newOptions(opt...)

	// scores[evaluator][datapoint] collects deduplicated per-pair scores.
	type pairScore struct {
		total float64
		count int
	}
	scores := make(map[string]map[string]*pairScore)
	for _, result := range results {
		if result == nil || result.ScoreType != ScoreTypeNumerical {
			continue
		}
		evaluatorName := result.EvaluatorName
		if evaluatorName == "" {
			evaluatorName = UnknownEvaluator
		}
		datapointID := result.DatapointID
		if datapointID == "" {
			datapointID = UnknownDatapoint
		}
		perDatapoint, ok := scores[evaluatorName]
		if !ok {
			perDatapoint = make(map[string]*pairScore)
			scores[evaluatorName] = perDatapoint
		}
		pair, ok := perDatapoint[datapointID]
		if !ok {
			pair = &pairScore{}
			perDatapoint[datapointID] = pair
		}
		pair.total += result.Score
		pair.count++
	}
	if len(scores) == 0 {
		return 0.0, map[string]float64{}
	}

	averages := make(map[string]float64, len(scores))
	for evaluatorName, perDatapoint := range scores {
		var total float64
		for _, pair := range perDatapoint {
			total += pair.total / float64(pair.count)
		}
		averages[evaluatorName] = total / float64(len(perDatapoint))
	}

	// Iterate evaluators in sorted order so the final score is deterministic
	// regardless of input order.
	names := make([]string, 0, len(averages))
	for name := range averages {
		names = append(names, name)
	}
	sort.Strings(names)
	var weightedTotal, weightTotal float64
	for _, name := range names {
		weight := 1.0
		if w, ok := opts.evaluatorWeights[name]; ok {
			weight = w
		}
		weightedTotal += averages[name] * weight
		weightTotal += weight
	}
	if weightTotal == 0 {
		return 0.0, averages
	}
	return weightedTotal / weightTotal, averages
}
