package dataset

import (
	"fmt"
	"strings"
)

// The lookup methods return the published record shapes, not the raw dataset
// entries: each one projects and renames fields the way the gateway API
// publishes them.

func getMap(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return map[string]any{}
}

func getList(m map[string]any, key string) []any {
	if v, ok := m[key].([]any); ok {
		return v
	}
	return nil
}

// IqviaMarket returns the market intelligence projection for a therapy area.
func (s *Store) IqviaMarket(area string) (map[string]any, error) {
	areaKey := strings.ToLower(area)
	areaData, ok := s.therapyAreas[areaKey]
	if !ok {
		return nil, notFound(
			fmt.Sprintf("Therapy area '%s' not found.", area),
			"available_areas", sortedKeys(s.therapyAreas),
		)
	}
	competitors := make([]any, 0)
	for _, item := range getList(areaData, "top_diseases") {
		disease, ok := item.(map[string]any)
		if !ok {
			continue
		}
		marketData := getMap(disease, "market_data")
		players := make([]any, 0)
		for _, p := range getList(marketData, "key_players_market_share") {
			player, ok := p.(map[string]any)
			if !ok {
				continue
			}
			players = append(players, map[string]any{
				"company":              player["company"],
				"market_share_percent": player["share_percent"],
			})
		}
		competitors = append(competitors, map[string]any{
			"disease_name":                     disease["disease_name"],
			"disease_market_size_usd_millions": marketData["market_size_usd_millions"],
			"key_players":                      players,
		})
	}
	name := areaData["therapy_area_name"]
	if name == nil {
		name = areaKey
	}
	return map[string]any{
		"therapy_area":                    name,
		"global_market_size_usd_millions": areaData["global_market_size_usd_millions"],
		"cagr_forecasted_percent":         areaData["cagr_forecasted"],
		"forecast_period":                 areaData["forecast_period"],
		"disease_markets_and_competitors": competitors,
	}, nil
}

// ClinicalTrials returns the clinical trials projection for a molecule.
func (s *Store) ClinicalTrials(molecule string) (map[string]any, error) {
	moleculeKey := strings.ToLower(molecule)
	moleculeData, ok := s.clinicalTrials[moleculeKey]
	if !ok {
		return nil, notFound(
			fmt.Sprintf("Molecule '%s' not found.", molecule),
			"available_molecules", sortedKeys(s.clinicalTrials),
		)
	}
	ongoing := make([]any, 0)
	for _, item := range getList(moleculeData, "active_trials") {
		trial, ok := item.(map[string]any)
		if !ok {
			continue
		}
		ongoing = append(ongoing, map[string]any{
			"nct_id":               trial["nct_id"],
			"title":                trial["title"],
			"phase":                trial["phase"],
			"status":               trial["status"],
			"sponsor":              trial["sponsor"],
			"indication":           trial["indication"],
			"enrollment":           trial["enrollment"],
			"estimated_completion": trial["estimated_completion"],
		})
	}
	return map[string]any{
		"molecule_name":               moleculeData["molecule_name"],
		"drug_class":                  moleculeData["drug_class"],
		"total_trials_reported":       moleculeData["total_trials"],
		"active_trials_count":         len(ongoing),
		"ongoing_trials_and_sponsors": ongoing,
		"sponsor_breakdown":           moleculeData["sponsor_breakdown"],
		"indication_distribution":     moleculeData["indication_distribution"],
	}, nil
}

// EximTrade returns the export/import trade projection for a molecule.
func (s *Store) EximTrade(molecule string) (map[string]any, error) {
	moleculeKey := strings.ToLower(molecule)
	moleculeData, ok := s.eximTrade[moleculeKey]
	if !ok {
		return nil, notFound(
			fmt.Sprintf("Molecule '%s' not found in trade data.", molecule),
			"available_molecules", sortedKeys(s.eximTrade),
		)
	}
	return map[string]any{
		"molecule_name":            moleculeData["molecule_name"],
		"api_exports_2023":         moleculeData["api_exports_2023"],
		"formulation_imports_2023": moleculeData["formulation_imports_2023"],
		"market_trend":             moleculeData["market_trend"],
		"forecast_2024_2026":       moleculeData["forecast_2024_2026"],
	}, nil
}

// PatentLandscape returns the patent landscape projection for a molecule.
func (s *Store) PatentLandscape(molecule string) (map[string]any, error) {
	moleculeKey := strings.ToLower(molecule)
	moleculeData, ok := s.patentRecords[moleculeKey]
	if !ok {
		return nil, notFound(
			fmt.Sprintf("Molecule '%s' not found in patent landscape data.", molecule),
			"available_molecules", sortedKeys(s.patentRecords),
		)
	}
	return map[string]any{
		"molecule_name":               moleculeData["molecule_name"],
		"molecule_details":            moleculeData["molecule_details"],
		"base_molecule_patent_status": moleculeData["base_molecule_patent_status"],
		"fto_status":                  moleculeData["freedom_to_operate"],
		"active_patents_us":           moleculeData["active_patents_us"],
		"key_expired_patents":         moleculeData["key_expired_patents"],
		"innovation_trends": map[string]any{
			"white_space_opportunities": moleculeData["white_space_opportunities"],
			"recommended_strategy":      moleculeData["recommended_strategy"],
		},
		"patent_counts": map[string]any{
			"expired_patents_count": moleculeData["expired_patents_count"],
		},
	}, nil
}

// PatentAnalysis returns the consolidated patent analysis projection for a
// molecule.
func (s *Store) PatentAnalysis(molecule string) (map[string]any, error) {
	moleculeKey := strings.ToLower(molecule)
	moleculeData, ok := s.patentAnalysis[moleculeKey]
	if !ok {
		return nil, notFound(
			fmt.Sprintf("Molecule '%s' not found in patent analysis data.", molecule),
			"available_molecules", sortedKeys(s.patentAnalysis),
		)
	}
	return map[string]any{
		"molecule_name":       moleculeData["molecule"],
		"molecule_details":    moleculeData["molecule_details"],
		"fto_status":          moleculeData["fto_status"],
		"active_patents_us":   moleculeData["active_patents"],
		"key_expired_patents": moleculeData["key_expired_patents"],
		"innovation_trends": map[string]any{
			"strategic_opportunity_analysis": moleculeData["strategic_opportunity_analysis"],
		},
		"patent_counts": map[string]any{
			"total_active_family_count":  moleculeData["total_active_family_count"],
			"total_expired_family_count": moleculeData["total_expired_family_count"],
		},
	}, nil
}

// KnowledgeDocument returns the knowledge base projection for a document ID.
func (s *Store) KnowledgeDocument(docID string) (map[string]any, error) {
	doc, ok := s.documents[docID]
	if !ok {
		return nil, notFound(
			fmt.Sprintf("Document ID '%s' not found.", docID),
			"available_document_ids", sortedKeys(s.documents),
		)
	}
	id, _ := doc["document_id"].(string)
	if id == "" {
		id = "doc"
	}
	return map[string]any{
		"document_metadata": doc,
		"synthetic_pdf_url": fmt.Sprintf("/media/synthetic_pdfs/%s.pdf", id),
	}, nil
}
