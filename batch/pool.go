//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/agenteval-ai/agenteval/evalresult"
	"github.com/agenteval-ai/agenteval/evaluator"
)

type evaluateParam struct {
	idx       int
	ctx       context.Context
	datapoint *Datapoint
	evaluator evaluator.Evaluator
	results   []*evalresult.Result
	wg        *sync.WaitGroup
}

func (p *evaluateParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.datapoint = nil
	p.evaluator = nil
	p.results = nil
	p.wg = nil
}

var evaluateParamPool = &sync.Pool{
	New: func() any { return new(evaluateParam) },
}

func createEvaluatePool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*evaluateParam)
		if !ok {
			panic("evaluate pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			evaluateParamPool.Put(param)
		}()
		param.results[param.idx] = evaluate(param.ctx, param.datapoint, param.evaluator)
	})
	if err != nil {
		return nil, fmt.Errorf("create evaluate pool: %w", err)
	}
	return pool, nil
}
