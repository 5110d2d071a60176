package usecase

import (
	"fmt"
	"strings"

	"github.com/diillson/aws-default-vpc-remover/internal/domain/entity"
)

// displaySummary renders one row per processed region.
func (uc *TeardownUseCase) displaySummary(report entity.RunReport) {
	if len(report.Regions) == 0 {
		uc.console.LogWarning("No regions were processed")
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("Region")
	table.AddColumn("Default VPC")
	table.AddColumn("Outcome")
	table.AddColumn("Findings")
	table.AddColumn("Errors")

	for _, region := range report.Regions {
		findings := make([]string, 0, len(region.Findings))
		for _, f := range region.Findings {
			findings = append(findings, fmt.Sprintf("%s %s", f.Kind, f.ID))
		}

		vpcID := region.VpcID
		if vpcID == "" {
			vpcID = "-"
		}

		table.AddRow(region.Region, vpcID, string(region.Outcome), strings.Join(findings, "\n"), len(region.Errors))
	}

	uc.console.Println(table.Render())

	deleted := report.Count(entity.OutcomeDeleted)
	if report.DryRun {
		deleted = report.Count(entity.OutcomeWouldDelete)
	}
	summary := fmt.Sprintf("%d region(s) processed: %d VPC(s) %s, %d occupied, %d blocked, %d failed",
		len(report.Regions), deleted, deletedVerb(report.DryRun),
		report.Count(entity.OutcomeOccupied), report.Count(entity.OutcomeBlocked), report.Count(entity.OutcomeFailed))

	if report.HasFailures() {
		uc.console.LogWarning("%s", summary)
		return
	}
	uc.console.LogSuccess("%s", summary)
}

func deletedVerb(dryRun bool) string {
	if dryRun {
		return "would be deleted"
	}
	return "deleted"
}

// exportReport writes the run report in every configured format. Failures are logged only.
func (uc *TeardownUseCase) exportReport(report entity.RunReport) {
	if uc.cfg.ReportName == "" || uc.exportRepo == nil {
		return
	}

	for _, reportType := range uc.cfg.ReportType {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportReportToCSV(report, uc.cfg.ReportName, uc.cfg.Dir)
		case "json":
			path, err = uc.exportRepo.ExportReportToJSON(report, uc.cfg.ReportName, uc.cfg.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportReportToPDF(report, uc.cfg.ReportName, uc.cfg.Dir)
		default:
			uc.console.LogWarning("Unsupported report type: %s", reportType)
			continue
		}

		if err != nil {
			uc.console.LogError("Failed to export report to %s: %s", strings.ToUpper(reportType), err)
		} else {
			uc.console.LogSuccess("Successfully exported report to %s: %s", strings.ToUpper(reportType), path)
		}
	}
}
