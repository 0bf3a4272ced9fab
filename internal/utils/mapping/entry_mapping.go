package mapping

import (
	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
	"github.com/betok3jr-art/k3_finance_app/internal/dto"
)

// ToEntryResponse maps a domain entry to its wire shape.
func ToEntryResponse(entry domain.Entry) dto.EntryResponse {
	return dto.EntryResponse{
		ID:                 entry.EntryID,
		Kind:               string(entry.Kind),
		Category:           entry.Category,
		Description:        entry.Description,
		Amount:             entry.Amount.String(),
		Date:               entry.OccursOn.String(),
		Status:             string(entry.Status),
		SeriesKind:         string(entry.InferSeriesKind()),
		InstallmentCurrent: entry.InstallmentCurrent,
		InstallmentTotal:   entry.InstallmentTotal,
		IsRecurring:        entry.IsRecurring,
	}
}

// ToEntryResponses maps a slice of entries, never returning nil.
func ToEntryResponses(entries []domain.Entry) []dto.EntryResponse {
	responses := make([]dto.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToEntryResponse(entry))
	}
	return responses
}

// ToProfileResponse maps a profile to its wire shape. The PIN never leaves
// the server.
func ToProfileResponse(profile domain.UserProfile) dto.ProfileResponse {
	return dto.ProfileResponse{
		Name:         profile.Name,
		Theme:        string(profile.Theme),
		HasOnboarded: profile.HasOnboarded,
	}
}

// ToMonthSummaryResponse maps a computed aggregate to its wire shape.
func ToMonthSummaryResponse(year int, month int, summary domain.MonthSummary) dto.MonthSummaryResponse {
	byCategory := make([]dto.CategoryTotalResponse, 0, len(summary.ByCategory))
	for _, row := range summary.ByCategory {
		byCategory = append(byCategory, dto.CategoryTotalResponse{
			Category: row.Category,
			Total:    row.Total.String(),
		})
	}
	return dto.MonthSummaryResponse{
		Year:       year,
		Month:      month,
		Income:     summary.Income.String(),
		Expense:    summary.Expense.String(),
		Balance:    summary.Balance.String(),
		ByCategory: byCategory,
		Entries:    ToEntryResponses(summary.Entries),
	}
}
