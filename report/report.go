// Package report renders the consolidated multi-agent results into
// downloadable PDF and Excel report files.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "excel"
	FormatBoth  Format = "both"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// AgentSection is one agent's contribution to the report.
type AgentSection struct {
	Agent    string         `json:"agent"`
	Analysis string         `json:"analysis"`
	Sources  []string       `json:"sources,omitempty"`
	RawData  map[string]any `json:"raw_data,omitempty"`
}

// Request describes one report to render.
type Request struct {
	Query    string
	Sections []AgentSection
	Summary  string
	Format   Format
}

// Response is the outcome of a render. Filepath is set for single-format
// reports; PDFFilepath/ExcelFilepath are set when both were rendered.
type Response struct {
	Status        Status `json:"status"`
	Format        string `json:"format,omitempty"`
	Filepath      string `json:"filepath,omitempty"`
	PDFFilepath   string `json:"pdf_filepath,omitempty"`
	ExcelFilepath string `json:"excel_filepath,omitempty"`
	Message       string `json:"message"`
}

// Generator renders reports into a directory.
type Generator struct {
	reportsDir string
	now        func() time.Time
}

func NewGenerator(reportsDir string) *Generator {
	return &Generator{
		reportsDir: reportsDir,
		now:        time.Now,
	}
}

// Generate renders the requested format(s). Failures never propagate as
// errors: the response carries the error status and message instead, so a
// failed render degrades the reply rather than aborting it.
func (g *Generator) Generate(req *Request) *Response {
	if err := os.MkdirAll(g.reportsDir, 0o755); err != nil {
		return errorResponse(err)
	}
	switch req.Format {
	case FormatPDF:
		path, err := g.generatePDF(req)
		if err != nil {
			return errorResponse(err)
		}
		return &Response{
			Status:   StatusSuccess,
			Format:   "PDF",
			Filepath: path,
			Message:  fmt.Sprintf("PDF report generated successfully: %s", filepath.Base(path)),
		}
	case FormatExcel:
		path, err := g.generateExcel(req)
		if err != nil {
			return errorResponse(err)
		}
		return &Response{
			Status:   StatusSuccess,
			Format:   "Excel",
			Filepath: path,
			Message:  fmt.Sprintf("Excel report generated successfully: %s", filepath.Base(path)),
		}
	default:
		pdfPath, err := g.generatePDF(req)
		if err != nil {
			return errorResponse(err)
		}
		excelPath, err := g.generateExcel(req)
		if err != nil {
			return errorResponse(err)
		}
		return &Response{
			Status:        StatusSuccess,
			Format:        "PDF & Excel",
			PDFFilepath:   pdfPath,
			ExcelFilepath: excelPath,
			Message:       fmt.Sprintf("Reports generated: %s and %s", filepath.Base(pdfPath), filepath.Base(excelPath)),
		}
	}
}

func errorResponse(err error) *Response {
	return &Response{
		Status:  StatusError,
		Message: fmt.Sprintf("Error generating report: %v", err),
	}
}

// filename builds a collision-free report file name.
func (g *Generator) filename(prefix, ext string) string {
	stamp := g.now().Format("20060102_150405")
	token := strings.Split(uuid.NewString(), "-")[0]
	return filepath.Join(g.reportsDir, fmt.Sprintf("%s_%s_%s.%s", prefix, stamp, token, ext))
}
