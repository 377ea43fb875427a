package agents

import (
	"github.com/pharmaxis/pharmintel/tools"
	"github.com/pharmaxis/pharmintel/tools/gateway"
)

// NewEximTradeAgent returns the specialist for export-import trade queries.
func NewEximTradeAgent(client *gateway.Client, opts ...Option) *Specialist {
	return NewSpecialist(
		tools.MustRegistry(gateway.NewEximTrade(client)),
		withDefaults(opts, "EXIM Trade Agent", eximTradePrompt)...,
	)
}

// NewIqviaInsightsAgent returns the specialist for market intelligence queries.
func NewIqviaInsightsAgent(client *gateway.Client, opts ...Option) *Specialist {
	return NewSpecialist(
		tools.MustRegistry(gateway.NewIqviaMarket(client)),
		withDefaults(opts, "IQVIA Agent", iqviaInsightsPrompt)...,
	)
}

// NewPatentLandscapeAgent returns the specialist for patent landscape and
// patent analysis queries.
func NewPatentLandscapeAgent(client *gateway.Client, opts ...Option) *Specialist {
	return NewSpecialist(
		tools.MustRegistry(gateway.NewPatentLandscape(client), gateway.NewPatentAnalysis(client)),
		withDefaults(opts, "Patent Agent", patentLandscapePrompt)...,
	)
}

// NewClinicalTrialsAgent returns the specialist for clinical pipeline queries.
func NewClinicalTrialsAgent(client *gateway.Client, opts ...Option) *Specialist {
	return NewSpecialist(
		tools.MustRegistry(gateway.NewClinicalTrials(client)),
		withDefaults(opts, "Clinical Trials Agent", clinicalTrialsPrompt)...,
	)
}

// NewInternalKnowledgeAgent returns the specialist for internal document queries.
func NewInternalKnowledgeAgent(client *gateway.Client, opts ...Option) *Specialist {
	return NewSpecialist(
		tools.MustRegistry(gateway.NewInternalKnowledge(client)),
		withDefaults(opts, "Internal Knowledge Agent", internalKnowledgePrompt)...,
	)
}

// NewWebIntelligenceAgent returns the research specialist. It carries a longer
// reasoning budget than the lookup specialists and keeps every retrieval
// result, since a research pass legitimately fans out over several queries.
func NewWebIntelligenceAgent(caps []tools.Capability, opts ...Option) *Specialist {
	defaults := []Option{
		WithName("Web Intelligence Agent"),
		WithSystemPrompt(webIntelligencePrompt),
		WithMaxIterations(3),
		WithLeadingQuery(),
		WithAccumulatedRawData(),
	}
	return NewSpecialist(
		tools.MustRegistry(caps...),
		append(defaults, opts...)...,
	)
}

func withDefaults(opts []Option, name, prompt string) []Option {
	return append([]Option{WithName(name), WithSystemPrompt(prompt)}, opts...)
}

// MasterCapabilities assembles the dispatcher's capability registry from the
// six specialists.
func MasterCapabilities(iqvia, web, exim, patent, clinical, internal *Specialist) *tools.Registry {
	return tools.MustRegistry(
		AsCapability(tools.IqviaInsights,
			"Invokes the specialized IQVIA Insights Agent for pharmaceutical market intelligence: market size, CAGR, therapy area valuations, competitor shares, and disease landscapes.",
			iqvia),
		AsCapability(tools.InvokeWebIntelligenceAgent,
			"Invokes the specialized Web Intelligence Agent for internet and literature searches. Combines web search and PubMed access for integrated public intelligence.",
			web),
		AsCapability(tools.InvokeEximTradeAgent,
			"Invokes the specialized EXIM Trends Agent for global pharmaceutical trade data: export-import volumes and values, market shares, sourcing patterns, and trade forecasts for specific molecules.",
			exim),
		AsCapability(tools.InvokePatentLandscapeAgent,
			"Invokes the specialized Patent Landscape Agent for intellectual property analysis: patent status and expiry, Freedom-to-Operate assessment, and white-space opportunities.",
			patent),
		AsCapability(tools.InvokeClinicalTrialsAgent,
			"Invokes the specialized Clinical Trials Agent for pharmaceutical R&D pipeline data. Provides details on clinical trial counts, phases, sponsors, and emerging indications.",
			clinical),
		AsCapability(tools.InvokeInternalKnowledgeAgent,
			"Invokes the specialized Internal Knowledge Agent to access proprietary company data. Provides strategic, competitive, regulatory, and operational intelligence.",
			internal),
	)
}

// displayNames maps capability names to agent presentation names for report
// sections.
var displayNames = map[string]string{
	tools.InvokeInternalKnowledgeAgent.String(): "Internal Knowledge Agent",
	tools.InvokeClinicalTrialsAgent.String():    "Clinical Trials Agent",
	tools.InvokePatentLandscapeAgent.String():   "Patent Landscape Agent",
	tools.InvokeEximTradeAgent.String():         "EXIM Trends Agent",
	tools.IqviaInsights.String():                "IQVIA Insights Agent",
	tools.InvokeWebIntelligenceAgent.String():   "Web Intelligence Agent",
}

// DisplayName returns the presentation name for a capability, falling back to
// the capability name itself.
func DisplayName(capabilityName string) string {
	if name, ok := displayNames[capabilityName]; ok {
		return name
	}
	return capabilityName
}
