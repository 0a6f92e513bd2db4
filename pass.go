//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package agenteval

import (
	"fmt"
	"math"

	"github.com/agenteval-ai/agenteval/evalresult"
)

// PassAtK computes the pass@k metric used in LLM / agent evaluation.
//
// pass@k measures the probability that at least one correct solution
// appears among k independently sampled agent runs.
//
// Formally:
//
//	Given:
//	  n = total number of sampled attempts
//	  c = number of successful attempts among n
//	  k = number of attempts we hypothetically select (k <= n)
//
//	pass@k is defined as:
//
//	  pass@k = 1 - C(n-c, k) / C(n, k)
//
//	where C(a, b) is the binomial coefficient ("a choose b").
//
// This is the unbiased estimator introduced in the Codex / HumanEval
// benchmarks: from the n observed runs, imagine randomly selecting k runs
// without replacement; pass@k is the probability that at least one of those
// k runs is successful.
//
// Directly computing factorials overflows for realistic n, so this
// implementation operates in log-space using math.Lgamma:
//
//	logP = ln((n-c)!) + ln((n-k)!) - ln((n-c-k)!) - ln(n!)
//	pass@k = 1 - exp(logP)
//
// Edge cases:
//
//   - If c == 0, returns 0
//   - If n-c < k, returns 1 (impossible to select k failures)
//
// The estimator assumes all n samples are independent and identically
// distributed; callers must reset agent state between runs, or pass@k will
// be systematically overestimated.
func PassAtK(n, c, k int) (float64, error) {
	if n < 0 {
		return 0.0, fmt.Errorf("n must be >= 0")
	}
	if k <= 0 {
		return 0.0, fmt.Errorf("k must be >= 1")
	}
	if c < 0 {
		return 0.0, fmt.Errorf("c must be >= 0")
	}
	if c > n {
		return 0.0, fmt.Errorf("c cannot exceed n")
	}
	if k > n {
		return 0.0, fmt.Errorf("k cannot exceed n")
	}
	// No successes observed.
	if c == 0 {
		return 0.0, nil
	}
	// Fewer than k failures exist -> at least one success guaranteed.
	if n-c < k {
		return 1.0, nil
	}
	nf := float64(n)
	cf := float64(c)
	kf := float64(k)
	// log((n-c)!)
	a, _ := math.Lgamma(nf - cf + 1)
	// log((n-k)!)
	b, _ := math.Lgamma(nf - kf + 1)
	// log((n-c-k)!)
	d, _ := math.Lgamma(nf - cf - kf + 1)
	// log(n!)
	e, _ := math.Lgamma(nf + 1)
	// log probability of drawing k failures
	logP := a + b - d - e
	// Use Expm1 for better precision when logP is close to zero:
	//   1 - exp(x) == -expm1(x)
	return -math.Expm1(logP), nil
}

// PassHatK computes the pass^k metric used in LLM / agent reliability
// evaluation.
//
// pass^k estimates the probability that a system succeeds k times in a row,
// assuming each run is an independent Bernoulli trial with identical success
// probability. With p = c / n estimated from the observed runs:
//
//	pass^k = p^k
//
// In contrast to pass@k, which measures whether at least one success appears
// (peak capability), pass^k emphasizes reliability and consistency.
//
// Computed in log-space, pass^k = exp(k * log(p)), which improves stability
// when p is very small or k is large.
//
// Edge cases:
//
//   - If c == 0, returns 0
//   - If c == n, returns 1
func PassHatK(n, c, k int) (float64, error) {
	if n <= 0 {
		return 0.0, fmt.Errorf("n must be > 0")
	}
	if k <= 0 {
		return 0.0, fmt.Errorf("k must be >= 1")
	}
	if c < 0 {
		return 0.0, fmt.Errorf("c must be >= 0")
	}
	if c > n {
		return 0.0, fmt.Errorf("c cannot exceed n")
	}

	// No successes observed.
	if c == 0 {
		return 0.0, nil
	}
	// All runs successful.
	if c == n {
		return 1.0, nil
	}
	p := float64(c) / float64(n)
	// Compute p^k in log-space for numerical stability: p^k = exp(k * log(p))
	return math.Exp(float64(k) * math.Log(p)), nil
}

// ParsePassNC extracts (n, c) from a report for pass@k / pass^k calculations.
// A numeric result counts as a success when its score reaches the threshold;
// a boolean result counts when it passed. Error results count as failures.
func ParsePassNC(report *evalresult.Report, threshold float64) (n, c int, err error) {
	if report == nil {
		return 0, 0, fmt.Errorf("report is nil")
	}
	for _, result := range report.Results {
		if result == nil {
			continue
		}
		n++
		switch result.ScoreType {
		case evalresult.ScoreTypeNumerical:
			if result.Score >= threshold {
				c++
			}
		case evalresult.ScoreTypeBoolean:
			if result.Passed {
				c++
			}
		}
	}
	return n, c, nil
}
