package tools

import (
	"context"

	"github.com/pharmaxis/pharmintel/components"
)

// ID is a typed capability identifier. Capabilities are dispatched by ID, and
// every declared ID must have a registered handler before any query runs.
type ID string

const (
	// Data gateway lookups.
	EximTradeData        ID = "get_exim_trade_data"
	IqviaMarketData      ID = "get_iqvia_market_data"
	PatentLandscapeData  ID = "get_patent_landscape_data"
	PatentAnalysisData   ID = "get_patent_analysis_data"
	ClinicalTrialsData   ID = "get_clinical_trials_data"
	InternalDocumentData ID = "get_internal_document_data"

	// Web intelligence capabilities.
	WebSearch     ID = "web_search"
	PubmedSearch  ID = "pubmed_search"
	WebpageScrape ID = "scrape_webpage"

	// Specialized agent invocations, bound to the master dispatcher.
	IqviaInsights                ID = "iqvia_insights"
	InvokeEximTradeAgent         ID = "invoke_exim_trade_agent"
	InvokePatentLandscapeAgent   ID = "invoke_patent_landscape_agent"
	InvokeClinicalTrialsAgent    ID = "invoke_clinical_trials_agent"
	InvokeInternalKnowledgeAgent ID = "invoke_internal_knowledge_agent"
	InvokeWebIntelligenceAgent   ID = "invoke_web_intelligence_agent"
)

func (id ID) String() string {
	return string(id)
}

// Capability is a named, single-argument operation invocable by the reasoning
// engine. Call returns a UTF-8 text payload; failures that should feed back
// into the reasoning context are returned as text, not as errors.
type Capability interface {
	ID() ID
	// Definition describes the capability and its single-field input schema.
	Definition() components.ToolDefinition
	// Call invokes the capability with the raw JSON argument mapping.
	Call(ctx context.Context, arguments string) (string, error)
}
