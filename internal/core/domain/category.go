package domain

// Category labels offered by the UI, keyed by entry kind. The data model does
// not reject other strings; these are the enumerated options plus the bucket
// imports fall into when the parser returns no category.
var (
	ExpenseCategories = []string{
		"💳 Cartão",
		"🍽️ Alimentação",
		"🏠 Moradia",
		"🚗 Transporte",
		"💊 Saúde",
		"🎉 Lazer",
		"🎓 Educação",
		"🛍️ Compras",
		"🧾 Contas",
		"📦 Outros",
	}

	IncomeCategories = []string{
		"💰 Salário",
		"🚀 Freelance",
		"📈 Investimentos",
		"🎁 Presente",
		"💵 Outros",
	}
)

// DefaultCategory is the generic bucket assigned to imported candidates that
// arrive without a category.
const DefaultCategory = "📦 Outros"

// CategoriesFor returns the enumerated category set for a kind.
func CategoriesFor(kind EntryKind) []string {
	if kind == Income {
		return IncomeCategories
	}
	return ExpenseCategories
}
