package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/aws-default-vpc-remover/internal/domain/entity"
	"github.com/diillson/aws-default-vpc-remover/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

var csvHeaders = []string{
	"Region", "Default VPC", "Outcome", "Dry Run", "Actions", "Findings", "Errors",
}

// ExportReportToCSV writes one row per processed region.
func (r *ExportRepositoryImpl) ExportReportToCSV(report entity.RunReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeaders); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, region := range report.Regions {
		record := []string{
			region.Region,
			valueOr(region.VpcID, "-"),
			string(region.Outcome),
			fmt.Sprintf("%t", report.DryRun),
			strings.Join(formatActions(region.Actions), "\n"),
			strings.Join(formatFindings(region.Findings), "\n"),
			strings.Join(region.Errors, "\n"),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV row for %s: %w", region.Region, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return outputFilename, nil
}

// ExportReportToJSON writes the full run report.
func (r *ExportRepositoryImpl) ExportReportToJSON(report entity.RunReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling report to JSON: %w", err)
	}

	if err := os.WriteFile(outputFilename, jsonData, 0644); err != nil {
		return "", fmt.Errorf("error writing JSON file: %w", err)
	}

	return outputFilename, nil
}

// ExportReportToPDF writes a summary page followed by one section per region.
func (r *ExportRepositoryImpl) ExportReportToPDF(report entity.RunReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 11)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 7, tr(title))
		pdf.Ln(6)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(3)

		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(5)
	}

	pdf.AddPage()

	title := "Default VPC Teardown Report"
	if report.DryRun {
		title += " (dry run)"
	}
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  "+title), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("  Profile: %s   Account ID: %s", report.Identity.Profile, report.Identity.AccountID)), "", 1, "L", true, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("  Identity: %s", report.Identity.Arn)), "", 1, "L", true, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("  Security group policy: %s   Started: %s   Finished: %s",
		report.SecurityGroupPolicy,
		report.StartedAt.Format(time.RFC3339),
		report.FinishedAt.Format(time.RFC3339))), "", 1, "L", true, 0, "")
	pdf.Ln(6)

	// Summary table.
	colWidths := []float64{40, 40, 35, 25, 25, 25}
	pdf.SetFont("Arial", "B", 9)
	for i, header := range []string{"Region", "Default VPC", "Outcome", "Actions", "Findings", "Errors"} {
		pdf.CellFormat(colWidths[i], 7, header, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, region := range report.Regions {
		if region.Failed() {
			pdf.SetTextColor(192, 0, 0)
		}
		pdf.CellFormat(colWidths[0], 6, tr(region.Region), "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, tr(valueOr(region.VpcID, "-")), "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, tr(string(region.Outcome)), "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, fmt.Sprintf("%d", len(region.Actions)), "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[4], 6, fmt.Sprintf("%d", len(region.Findings)), "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[5], 6, fmt.Sprintf("%d", len(region.Errors)), "", 1, "L", false, 0, "")
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	}
	pdf.Ln(8)

	for _, region := range report.Regions {
		if len(region.Actions) == 0 && len(region.Findings) == 0 && len(region.Errors) == 0 {
			continue
		}
		pdf.SetFillColor(240, 240, 240)
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.CellFormat(0, 9, tr(fmt.Sprintf("  %s / %s: %s", region.Region, valueOr(region.VpcID, "-"), region.Outcome)), "", 1, "L", true, 0, "")
		pdf.Ln(3)

		drawSection("Actions", strings.Join(formatActions(region.Actions), "\n"))
		drawSection("Findings", strings.Join(formatFindings(region.Findings), "\n"))
		drawSection("Errors", strings.Join(region.Errors, "\n"))
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error saving PDF file: %w", err)
	}

	return outputFilename, nil
}

func formatActions(actions []entity.Action) []string {
	lines := make([]string, 0, len(actions))
	for _, a := range actions {
		line := fmt.Sprintf("%s %s %s", a.Operation, a.Kind, a.ID)
		if a.DryRun {
			line += " (dry run)"
		}
		if a.Error != "" {
			line += ": " + a.Error
		}
		lines = append(lines, line)
	}
	return lines
}

func formatFindings(findings []entity.Finding) []string {
	lines := make([]string, 0, len(findings))
	for _, f := range findings {
		lines = append(lines, fmt.Sprintf("%s %s: %s", f.Kind, f.ID, f.Detail))
	}
	return lines
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
