package dto

// CandidateEntry is one possible transaction extracted from a bank statement
// by the language-model collaborator. Every field is untrusted: the parser
// may omit or mangle any of them, so reconciliation validates before use.
// Amount is a pointer to distinguish "missing" from zero.
type CandidateEntry struct {
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Kind        string   `json:"type"`
	Amount      *float64 `json:"amount"`
}

// ImportPreviewResponse carries the parsed candidates back to the client for
// confirmation. Nothing is written until the client confirms.
type ImportPreviewResponse struct {
	Candidates []CandidateEntry `json:"candidates"`
}

// ConfirmImportRequest submits the previewed candidates for reconciliation
// against the ledger as it stands at confirmation time.
type ConfirmImportRequest struct {
	Candidates []CandidateEntry `json:"candidates" binding:"required"`
}

// ImportResultResponse summarizes a confirmed import.
type ImportResultResponse struct {
	Offered  int             `json:"offered"`
	Accepted int             `json:"accepted"`
	Entries  []EntryResponse `json:"entries"`
}
