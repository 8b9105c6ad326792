package types

import (
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// FileRecord is the persisted form of a FileReport.
type FileRecord struct {
	ID              *models.RecordID `json:"id,omitempty"`
	File            string           `json:"file"`
	Language        string           `json:"language"`
	TotalMethods    int              `json:"total_methods"`
	TotalComplexity int              `json:"total_complexity"`
}

// MethodRecord is the persisted form of a Method.
type MethodRecord struct {
	ID           *models.RecordID `json:"id,omitempty"`
	Name         string           `json:"name"`
	File         string           `json:"file"`
	Language     string           `json:"language"`
	Line         int              `json:"line"`
	Complexity   int              `json:"complexity"`
	Status       string           `json:"status"`
	NestingDepth int              `json:"nesting_depth"`
}

// NewFileRecord converts a FileReport for storage.
func NewFileRecord(fr FileReport) FileRecord {
	return FileRecord{
		File:            fr.File,
		Language:        fr.Language,
		TotalMethods:    fr.Report.Summary.TotalMethods,
		TotalComplexity: fr.Report.Summary.TotalComplexity,
	}
}

// NewMethodRecords converts a FileReport's methods for storage.
func NewMethodRecords(fr FileReport) []MethodRecord {
	records := make([]MethodRecord, 0, len(fr.Report.Methods))
	for _, m := range fr.Report.Methods {
		records = append(records, MethodRecord{
			Name:         m.Name,
			File:         fr.File,
			Language:     fr.Language,
			Line:         m.Line,
			Complexity:   m.Complexity,
			Status:       m.Status,
			NestingDepth: m.NestingDepth,
		})
	}
	return records
}
