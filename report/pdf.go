package report

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// generatePDF renders the narrative report: cover metadata, executive
// summary, methodology, one section per agent, key findings and conclusion.
func (g *Generator) generatePDF(req *Request) (string, error) {
	path := g.filename("pharma_innovation_report", "pdf")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Pharmaceutical Innovation Intelligence Report", false)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Cover header
	pdf.SetFillColor(232, 234, 246)
	pdf.SetTextColor(26, 35, 126)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.MultiCell(0, 12, "Pharmaceutical Innovation Intelligence Report", "", "C", true)
	pdf.Ln(6)

	// Metadata
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	metadata := [][2]string{
		{"Report Generated", g.now().Format("January 2, 2006 at 15:04:05")},
		{"Query", req.Query},
		{"AI Agents Consulted", fmt.Sprintf("%d", len(req.Sections))},
	}
	for _, row := range metadata {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(55, 8, row[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 8, row[1], "", "L", false)
	}
	pdf.Ln(6)

	g.pdfHeading(pdf, "1. Executive Summary")
	pdf.SetFillColor(255, 249, 196)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, req.Summary, "", "L", true)
	pdf.Ln(6)

	g.pdfHeading(pdf, "2. Research Objective")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "Primary research question: "+req.Query, "", "L", false)
	pdf.MultiCell(0, 6, "This report synthesizes market intelligence, patent databases, clinical trial registries, trade data and internal knowledge repositories into a consolidated view of the opportunity landscape.", "", "L", false)
	pdf.Ln(6)

	g.pdfHeading(pdf, "3. Methodology & Data Sources")
	g.pdfSourcesTable(pdf)
	pdf.Ln(6)

	g.pdfHeading(pdf, "4. Detailed Analysis by Domain")
	for idx, section := range req.Sections {
		pdf.SetFillColor(2, 119, 189)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 9, fmt.Sprintf("4.%d %s", idx+1, section.Agent), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, section.Analysis, "", "L", false)
		if len(section.Sources) > 0 {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.MultiCell(0, 5, "Data sources: "+strings.Join(section.Sources, ", "), "", "L", false)
		}
		pdf.Ln(4)
	}

	g.pdfHeading(pdf, "5. Key Findings & Insights")
	pdf.SetFont("Helvetica", "", 11)
	for _, section := range req.Sections {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, section.Agent, "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, keyFinding(section.Analysis), "", "L", false)
		pdf.Ln(2)
	}
	pdf.Ln(4)

	g.pdfHeading(pdf, "6. Conclusion")
	pdf.SetFillColor(232, 234, 246)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf(
		"This report consolidated %d specialized intelligence domains. It is based on data current as of %s; market conditions, competitive dynamics and regulatory landscapes may change.",
		len(req.Sections), g.now().Format("January 2006")), "", "L", true)
	pdf.Ln(8)

	pdf.SetFillColor(26, 35, 126)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 10, "Generated by the Pharmaceutical Innovation AI Agent System", "", 1, "C", true, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}

func (g *Generator) pdfHeading(pdf *fpdf.Fpdf, title string) {
	pdf.SetFillColor(225, 245, 254)
	pdf.SetTextColor(2, 119, 189)
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 10, title, "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)
}

func (g *Generator) pdfSourcesTable(pdf *fpdf.Fpdf) {
	rows := [][3]string{
		{"Data Source", "Coverage", "Primary Use"},
		{"IQVIA Market Intelligence", "Global pharma markets, sales, forecasts", "Market sizing, trends, competition"},
		{"Patent Databases", "Global patent filings and grants", "IP landscape, patent expiry"},
		{"Clinical Trial Registries", "Trial registrations worldwide", "Pipeline analysis, trial designs"},
		{"EXIM Trade Data", "Import/export pharmaceutical data", "Trade flows, market access"},
		{"Internal Knowledge Base", "Company strategy, research archives", "Historical context, precedents"},
		{"Web Intelligence", "Current guidelines, publications", "Latest developments, regulations"},
	}
	widths := [3]float64{55, 70, 65}
	for i, row := range rows {
		if i == 0 {
			pdf.SetFillColor(26, 35, 126)
			pdf.SetTextColor(255, 255, 255)
			pdf.SetFont("Helvetica", "B", 10)
		} else {
			pdf.SetFillColor(245, 245, 245)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", 9)
		}
		for col, cell := range row {
			pdf.CellFormat(widths[col], 8, cell, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
}
