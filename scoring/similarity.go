//
// Copyright (C) 2025 AgentEval authors. All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package scoring

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"

	"github.com/agenteval-ai/agenteval/scoring/internal/lcs"
)

// SimilarityMode selects the text similarity scoring rule.
type SimilarityMode string

const (
	// SimilarityModeLCS scores with a word-level longest common subsequence (ROUGE-L).
	SimilarityModeLCS SimilarityMode = "lcs"
	// SimilarityModeSummaryLCS scores with sentence-level LCS aggregation (ROUGE-Lsum).
	SimilarityModeSummaryLCS SimilarityMode = "summary_lcs"
)

// SimilarityScore holds precision, recall and F-measure of a text similarity comparison.
type SimilarityScore struct {
	// Precision is the fraction of predicted tokens matched by the reference.
	Precision float64 `json:"precision"`
	// Recall is the fraction of reference tokens matched by the prediction.
	Recall float64 `json:"recall"`
	// FMeasure is the harmonic mean of precision and recall.
	FMeasure float64 `json:"f_measure"`
}

var (
	// nonAlphaNumRE matches one or more non-alphanumeric characters for normalization.
	nonAlphaNumRE = regexp.MustCompile(`[^a-z0-9]+`)
	// spacesRE matches one or more whitespace characters for token splitting.
	spacesRE = regexp.MustCompile(`\s+`)
)

// Similarity scores how similar a predicted text is to a reference text.
// Both texts are lowercased and tokenized on non-alphanumeric boundaries.
func Similarity(target, prediction string, mode SimilarityMode) (SimilarityScore, error) {
	switch mode {
	case SimilarityModeLCS, "":
		return similarityLCS(tokenize(target), tokenize(prediction)), nil
	case SimilarityModeSummaryLCS:
		return similaritySummaryLCS(target, prediction)
	default:
		return SimilarityScore{}, fmt.Errorf("invalid similarity mode %q", string(mode))
	}
}

// tokenize lowercases, normalizes punctuation and splits text on whitespace.
func tokenize(text string) []string {
	text = strings.ToLower(text)
	text = nonAlphaNumRE.ReplaceAllString(text, " ")
	parts := spacesRE.Split(strings.TrimSpace(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, token := range parts {
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// similarityLCS computes precision, recall and F-measure from the LCS length.
func similarityLCS(targetTokens, predTokens []string) SimilarityScore {
	if len(targetTokens) == 0 || len(predTokens) == 0 {
		return SimilarityScore{}
	}
	lcsLen := lcs.Length(targetTokens, predTokens)
	precision := float64(lcsLen) / float64(len(predTokens))
	recall := float64(lcsLen) / float64(len(targetTokens))
	return SimilarityScore{Precision: precision, Recall: recall, FMeasure: fMeasure(precision, recall)}
}

// similaritySummaryLCS computes sentence-level LCS aggregation over both texts.
func similaritySummaryLCS(target, prediction string) (SimilarityScore, error) {
	targetSents, err := sentTokenize(target)
	if err != nil {
		return SimilarityScore{}, err
	}
	predSents, err := sentTokenize(prediction)
	if err != nil {
		return SimilarityScore{}, err
	}
	targetTokensList := make([][]string, 0, len(targetSents))
	for _, s := range targetSents {
		targetTokensList = append(targetTokensList, tokenize(s))
	}
	predTokensList := make([][]string, 0, len(predSents))
	for _, s := range predSents {
		predTokensList = append(predTokensList, tokenize(s))
	}
	return summaryLevelLCS(targetTokensList, predTokensList), nil
}

// summaryLevelLCS aggregates per-sentence LCS hits and prevents double-counting matched tokens.
func summaryLevelLCS(refSents, predSents [][]string) SimilarityScore {
	if len(refSents) == 0 || len(predSents) == 0 {
		return SimilarityScore{}
	}
	m := 0
	for _, s := range refSents {
		m += len(s)
	}
	n := 0
	for _, s := range predSents {
		n += len(s)
	}
	if m == 0 || n == 0 {
		return SimilarityScore{}
	}
	tokenCntsR := make(map[string]int)
	tokenCntsP := make(map[string]int)
	for _, s := range refSents {
		for _, tok := range s {
			tokenCntsR[tok]++
		}
	}
	for _, s := range predSents {
		for _, tok := range s {
			tokenCntsP[tok]++
		}
	}
	hits := 0
	for _, ref := range refSents {
		for _, tok := range unionLCS(ref, predSents) {
			if tokenCntsP[tok] <= 0 || tokenCntsR[tok] <= 0 {
				continue
			}
			hits++
			tokenCntsP[tok]--
			tokenCntsR[tok]--
		}
	}
	recall := float64(hits) / float64(m)
	precision := float64(hits) / float64(n)
	return SimilarityScore{Precision: precision, Recall: recall, FMeasure: fMeasure(precision, recall)}
}

// unionLCS returns reference tokens that appear in any LCS against the prediction sentences.
func unionLCS(ref []string, predSents [][]string) []string {
	seen := make(map[int]struct{})
	for _, pred := range predSents {
		for _, idx := range lcs.Indices(ref, pred) {
			seen[idx] = struct{}{}
		}
	}
	union := make([]int, 0, len(seen))
	for idx := range seen {
		union = append(union, idx)
	}
	sort.Ints(union)
	out := make([]string, 0, len(union))
	for _, idx := range union {
		out = append(out, ref[idx])
	}
	return out
}

// fMeasure computes the harmonic mean of precision and recall.
func fMeasure(precision, recall float64) float64 {
	if precision+recall > 0 {
		return 2 * precision * recall / (precision + recall)
	}
	return 0
}

var (
	// englishSentenceTokenizerOnce ensures the Punkt model is loaded once.
	englishSentenceTokenizerOnce sync.Once
	// englishSentenceTokenizer holds the initialized sentence tokenizer instance.
	englishSentenceTokenizer *sentences.DefaultSentenceTokenizer
	// englishSentenceTokenizerErr caches any initialization error.
	englishSentenceTokenizerErr error
)

// sentTokenize splits English text into sentences using Punkt training data.
func sentTokenize(text string) ([]string, error) {
	englishSentenceTokenizerOnce.Do(func() {
		b, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			englishSentenceTokenizerErr = fmt.Errorf("load english punkt data: %w", err)
			return
		}
		training, err := sentences.LoadTraining(b)
		if err != nil {
			englishSentenceTokenizerErr = fmt.Errorf("parse english punkt data: %w", err)
			return
		}
		englishSentenceTokenizer = sentences.NewSentenceTokenizer(training)
	})
	if englishSentenceTokenizerErr != nil {
		return nil, englishSentenceTokenizerErr
	}
	raw := englishSentenceTokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		s := strings.TrimSpace(sent.Text)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
