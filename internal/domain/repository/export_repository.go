package repository

import (
	"github.com/diillson/aws-default-vpc-remover/internal/domain/entity"
)

type ExportRepository interface {
	ExportReportToCSV(report entity.RunReport, filename, outputDir string) (string, error)
	ExportReportToJSON(report entity.RunReport, filename, outputDir string) (string, error)
	ExportReportToPDF(report entity.RunReport, filename, outputDir string) (string, error)
}
