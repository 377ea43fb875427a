package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Excel sheet names are capped at 31 characters.
const maxSheetNameLen = 31

// generateExcel renders the structured report: a summary sheet plus one
// sheet per agent holding its flattened raw data.
func (g *Generator) generateExcel(req *Request) (string, error) {
	path := g.filename("pharma_innovation_data", "xlsx")

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return "", err
	}
	summaryRows := [][2]string{
		{"Report Date", g.now().Format("2006-01-02 15:04:05")},
		{"Query", req.Query},
		{"Number of Agents", fmt.Sprintf("%d", len(req.Sections))},
	}
	for col, row := range summaryRows {
		headerCell, _ := excelize.CoordinatesToCellName(col+1, 1)
		valueCell, _ := excelize.CoordinatesToCellName(col+1, 2)
		if err := f.SetCellValue("Summary", headerCell, row[0]); err != nil {
			return "", err
		}
		if err := f.SetCellValue("Summary", valueCell, row[1]); err != nil {
			return "", err
		}
	}

	for i, section := range req.Sections {
		if len(section.RawData) == 0 {
			continue
		}
		name := section.Agent
		if name == "" {
			name = fmt.Sprintf("Agent_%d", i)
		}
		sheet := sheetName(name)
		if _, err := f.NewSheet(sheet); err != nil {
			return "", err
		}
		flattened := flattenMap(section.RawData, "")
		for col, key := range sortedFlatKeys(flattened) {
			headerCell, _ := excelize.CoordinatesToCellName(col+1, 1)
			valueCell, _ := excelize.CoordinatesToCellName(col+1, 2)
			if err := f.SetCellValue(sheet, headerCell, key); err != nil {
				return "", err
			}
			if err := f.SetCellValue(sheet, valueCell, fmt.Sprintf("%v", flattened[key])); err != nil {
				return "", err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}

func sheetName(agent string) string {
	name := strings.ReplaceAll(agent, " ", "_")
	if len(name) > maxSheetNameLen {
		name = name[:maxSheetNameLen]
	}
	return name
}
