package dto

// CreateEntryRequest submits one template to the series expander. Amount is
// the raw form text ("1.234,56" style decimal commas are accepted). When
// IsFixed is false, Installments picks the series length (1 = single entry);
// when IsFixed is true, Frequency picks the batch cadence.
type CreateEntryRequest struct {
	Kind         string `json:"type" binding:"required,oneof=income expense"`
	Category     string `json:"category" binding:"required,category"`
	Description  string `json:"description" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
	Date         string `json:"date" binding:"required"`
	IsFixed      bool   `json:"isFixed"`
	Installments int    `json:"installments" binding:"omitempty,min=1,max=48"`
	Frequency    string `json:"frequency" binding:"omitempty,oneof=weekly monthly yearly"`
}

// UpdateEntryRequest replaces one existing entry in place, preserving its id
// and status. It never re-expands a series.
type UpdateEntryRequest struct {
	Kind        string `json:"type" binding:"required,oneof=income expense"`
	Category    string `json:"category" binding:"required,category"`
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date" binding:"required"`
}

// EntryResponse is one ledger entry as exposed to the client.
type EntryResponse struct {
	ID                 string `json:"id"`
	Kind               string `json:"type"`
	Category           string `json:"category"`
	Description        string `json:"description"`
	Amount             string `json:"amount"`
	Date               string `json:"date"`
	Status             string `json:"status"`
	SeriesKind         string `json:"seriesKind"`
	InstallmentCurrent int    `json:"installmentCurrent,omitempty"`
	InstallmentTotal   int    `json:"installmentTotal,omitempty"`
	IsRecurring        bool   `json:"isRecurring,omitempty"`
}

// ListEntriesResponse returns the user's whole ledger in insertion order.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}
