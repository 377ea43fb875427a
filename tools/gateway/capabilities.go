package gateway

import (
	"github.com/pharmaxis/pharmintel/components"
	"github.com/pharmaxis/pharmintel/tools"
)

// NewEximTrade returns the export/import trade lookup capability.
func NewEximTrade(client *Client) tools.Capability {
	return &lookup{
		id:       tools.EximTradeData,
		client:   client,
		path:     "/api/exim-trade/",
		queryKey: "molecule",
		kind:     byMolecule,
		def: components.ToolDefinition{
			Name:                 tools.EximTradeData.String(),
			Description:          "Queries the internal EXIM Trade API for a specific molecule. Returns a JSON string containing export/import volumes, values, key markets, and trade trends.",
			Parameter:            "molecule_name",
			ParameterDescription: "The specific molecule or API to query, e.g., 'metformin', 'ibuprofen'.",
		},
	}
}

// NewIqviaMarket returns the IQVIA therapy-area market lookup capability.
func NewIqviaMarket(client *Client) tools.Capability {
	return &lookup{
		id:       tools.IqviaMarketData,
		client:   client,
		path:     "/api/iqvia/",
		queryKey: "area",
		kind:     byTherapyArea,
		def: components.ToolDefinition{
			Name:                 tools.IqviaMarketData.String(),
			Description:          "Queries the internal IQVIA Market Intelligence API for a specific therapy area. Returns a JSON string containing market size, CAGR, and competitor data.",
			Parameter:            "therapy_area",
			ParameterDescription: "The specific therapy area to query, e.g., 'respiratory', 'oncology', or 'cardiology'.",
		},
	}
}

// NewPatentLandscape returns the patent landscape lookup capability.
func NewPatentLandscape(client *Client) tools.Capability {
	return &lookup{
		id:       tools.PatentLandscapeData,
		client:   client,
		path:     "/api/patents/",
		queryKey: "molecule",
		kind:     byMolecule,
		def: components.ToolDefinition{
			Name:                 tools.PatentLandscapeData.String(),
			Description:          "Queries the internal Patent Landscape API for a specific molecule. Returns a JSON string containing patent status, FTO, active patents, expiry timelines, and white-space opportunities.",
			Parameter:            "molecule_name",
			ParameterDescription: "The specific molecule or drug to query, e.g., 'semaglutide', 'sitagliptin'.",
		},
	}
}

// NewPatentAnalysis returns the consolidated patent analysis lookup capability.
func NewPatentAnalysis(client *Client) tools.Capability {
	return &lookup{
		id:       tools.PatentAnalysisData,
		client:   client,
		path:     "/api/patent-analysis/",
		queryKey: "molecule",
		kind:     byMolecule,
		def: components.ToolDefinition{
			Name:                 tools.PatentAnalysisData.String(),
			Description:          "Queries the internal Patent Analysis API for a specific molecule. Returns a JSON string with an analysis summary alongside the underlying patent landscape record.",
			Parameter:            "molecule_name",
			ParameterDescription: "The specific molecule or drug to query, e.g., 'semaglutide', 'sitagliptin'.",
		},
	}
}

// NewClinicalTrials returns the clinical trials lookup capability.
func NewClinicalTrials(client *Client) tools.Capability {
	return &lookup{
		id:       tools.ClinicalTrialsData,
		client:   client,
		path:     "/api/clinical-trials/",
		queryKey: "molecule",
		kind:     byMolecule,
		def: components.ToolDefinition{
			Name:                 tools.ClinicalTrialsData.String(),
			Description:          "Queries the internal Clinical Trials API for a specific molecule. Returns a JSON string containing total/active trial counts, details of ongoing trials, sponsor breakdowns, and indication distributions.",
			Parameter:            "molecule_name",
			ParameterDescription: "The specific molecule or drug to query, e.g., 'pirfenidone', 'semaglutide'.",
		},
	}
}

// NewInternalKnowledge returns the knowledge base document lookup capability.
func NewInternalKnowledge(client *Client) tools.Capability {
	return &lookup{
		id:       tools.InternalDocumentData,
		client:   client,
		path:     "/api/knowledge-base/",
		queryKey: "doc_id",
		kind:     byDocument,
		def: components.ToolDefinition{
			Name:                 tools.InternalDocumentData.String(),
			Description:          "Queries the internal Knowledge Base API for a specific document ID. Returns a JSON string containing the document's metadata and content.",
			Parameter:            "doc_id",
			ParameterDescription: "The specific document ID to retrieve, e.g., 'STRAT-2024-001' or 'FIELD-2024-Q3'.",
		},
	}
}
