package types

import (
	"encoding/json"
	"fmt"
)

// Method holds the complexity score for a single discovered function or
// method. Line is 1-based. Status is one of "simple", "moderate", "complex".
type Method struct {
	Name         string `json:"name"`
	Line         int    `json:"line"`
	Complexity   int    `json:"complexity"`
	Status       string `json:"status"`
	NestingDepth int    `json:"nestingDepth"`
}

// Summary aggregates one analysis run. TotalComplexity is the exact sum of
// the method complexities, not an average.
type Summary struct {
	TotalMethods    int `json:"totalMethods"`
	TotalComplexity int `json:"totalComplexity"`
}

// Report is the result of analyzing one source snippet. Methods are ordered
// by source position.
type Report struct {
	Summary Summary  `json:"summary"`
	Methods []Method `json:"methods"`
}

// FileReport is a Report tied to a file on disk.
type FileReport struct {
	File     string `json:"file"`
	Language string `json:"language"`
	Report   Report `json:"report"`
}

// DirectoryReport contains the per-file reports for a directory scan plus a
// rolled-up summary.
type DirectoryReport struct {
	Files   []FileReport `json:"files"`
	Summary Summary      `json:"summary"`
}

// PrettyPrint returns an indented JSON rendering of the report.
func (r DirectoryReport) PrettyPrint() string {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error generating summary: %v", err)
	}
	return string(b)
}
