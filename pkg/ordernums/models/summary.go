package models

// SummaryRow is one data row of the generated summary sheet.
type SummaryRow struct {
	// Identifier is the extracted number in canonical decimal form.
	Identifier string `json:"numero"`
	// VerificationFormula is the lookup formula text, including the leading "=".
	VerificationFormula string `json:"encontrado"`
	// OwnerCount is the number of consultants after filtering.
	OwnerCount int `json:"ocorrencias"`
	// OwnersJoined lists the filtered consultants sorted and joined with "; ".
	OwnersJoined string `json:"consultores"`
}

// Report describes one processing run.
type Report struct {
	RequestID     string `json:"request_id"`
	SourceSheet   string `json:"source_sheet"`
	OutputSheet   string `json:"output_sheet"`
	UniqueCount   int    `json:"unique_count"`
	LastSourceRow int    `json:"last_source_row"`
	OutputPath    string `json:"output_path,omitempty"`
}
