package domain

import (
	"github.com/shopspring/decimal"
)

// Frequency is the cadence of a fixed-recurrence series.
type Frequency string

const (
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// Occurrences returns how many entries a fixed series of this frequency
// materializes per creation. Recurrence is never open-ended; each creation
// pre-materializes a bounded batch.
func (f Frequency) Occurrences() int {
	switch f {
	case Weekly, Monthly:
		return 12
	case Yearly:
		return 2
	default:
		return 0
	}
}

// MaxInstallments bounds the installment count a template may request.
const MaxInstallments = 48

// SeriesMode describes how a template expands: exactly one of a single
// entry, an installment plan, or a fixed recurrence.
type SeriesMode struct {
	Kind         SeriesKind
	Installments int       // only when Kind == SeriesInstallment, in [1, MaxInstallments]
	Frequency    Frequency // only when Kind == SeriesFixed
}

// EntryTemplate is the user-submitted shape the series expander consumes.
// Callers validate description, amount and date before expansion.
type EntryTemplate struct {
	Kind        EntryKind
	Category    string
	Description string
	Amount      decimal.Decimal
	StartDate   Date
	Mode        SeriesMode
}
