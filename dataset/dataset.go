// Package dataset loads the pharmaceutical intelligence dataset and serves
// the per-domain record lookups behind the data gateway endpoints.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// NotFoundError reports a missing record together with the keys the dataset
// does hold, so callers can surface the alternatives.
type NotFoundError struct {
	Message string
	// AvailableKey is the JSON field name the alternatives are published
	// under, e.g. "available_molecules".
	AvailableKey string
	Available    []string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// Store is the in-memory dataset. Loaded once, read-only afterwards, safe for
// concurrent lookups.
type Store struct {
	therapyAreas   map[string]map[string]any
	clinicalTrials map[string]map[string]any
	eximTrade      map[string]map[string]any
	patentRecords  map[string]map[string]any
	patentAnalysis map[string]map[string]any
	documents      map[string]map[string]any
}

// Load reads and indexes the dataset file.
func Load(path string) (*Store, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(bs)
}

// Parse indexes an already-read dataset document.
func Parse(bs []byte) (*Store, error) {
	var root struct {
		MarketIntelligence struct {
			TherapyAreas map[string]map[string]any `json:"therapy_areas"`
		} `json:"market_intelligence_iqvia"`
		ClinicalTrials map[string]map[string]any            `json:"clinical_trials"`
		EximTrade      map[string]map[string]any            `json:"exim_trade_data"`
		PatentRecords  map[string]map[string]any            `json:"patent_landscape"`
		PatentAnalysis map[string]map[string]any            `json:"patent_analysis"`
		KnowledgeBase  map[string]map[string]map[string]any `json:"internal_knowledge_base"`
	}
	if err := json.Unmarshal(bs, &root); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return &Store{
		therapyAreas:   root.MarketIntelligence.TherapyAreas,
		clinicalTrials: root.ClinicalTrials,
		eximTrade:      root.EximTrade,
		patentRecords:  root.PatentRecords,
		patentAnalysis: root.PatentAnalysis,
		documents:      flattenKnowledgeBase(root.KnowledgeBase),
	}, nil
}

// flattenKnowledgeBase converts the nested knowledge base into a flat
// {document_id: document} lookup map.
func flattenKnowledgeBase(kb map[string]map[string]map[string]any) map[string]map[string]any {
	docMap := make(map[string]map[string]any)
	for _, subCategories := range kb {
		for _, doc := range subCategories {
			if id, ok := doc["document_id"].(string); ok {
				docMap[id] = doc
			}
		}
	}
	return docMap
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func notFound(message string, availableKey string, keys []string) *NotFoundError {
	return &NotFoundError{
		Message:      message,
		AvailableKey: availableKey,
		Available:    keys,
	}
}
