package taxonomy

import "budget-tracker/internal/models"

var paymentMethods = []models.PaymentMethod{
	{ID: "cash", Type: models.PaymentCash, Nickname: "Cash"},
	{ID: "visa-debit", Type: models.PaymentDebit, Provider: "Visa", Nickname: "Visa Debit"},
	{ID: "mastercard-debit", Type: models.PaymentDebit, Provider: "Mastercard", Nickname: "Mastercard Debit"},
	{ID: "interac-debit", Type: models.PaymentDebit, Provider: "Interac", Nickname: "Interac Debit"},
	{ID: "visa-credit", Type: models.PaymentCredit, Provider: "Visa", Nickname: "Visa Credit"},
	{ID: "mastercard-credit", Type: models.PaymentCredit, Provider: "Mastercard", Nickname: "Mastercard Credit"},
	{ID: "amex-credit", Type: models.PaymentCredit, Provider: "American Express", Nickname: "American Express"},
	{ID: "e-transfer", Type: models.PaymentETransfer, Provider: "Interac", Nickname: "E-Transfer"},
	{ID: "bank-transfer", Type: models.PaymentTransfer, Nickname: "Bank Transfer"},
}

// PaymentMethods returns the fixed payment-method taxonomy.
func PaymentMethods() []models.PaymentMethod {
	out := make([]models.PaymentMethod, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

// PaymentMethodByID looks up a payment method by its identifier.
func PaymentMethodByID(id string) (models.PaymentMethod, bool) {
	for _, m := range paymentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return models.PaymentMethod{}, false
}

// PaymentMethodsByType returns all methods of the given type.
func PaymentMethodsByType(t models.PaymentMethodType) []models.PaymentMethod {
	var out []models.PaymentMethod
	for _, m := range paymentMethods {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

// FormatPaymentMethod renders a payment method for display.
func FormatPaymentMethod(m models.PaymentMethod) string {
	if m.Type == models.PaymentCash {
		return "Cash"
	}
	display := m.Nickname
	if display == "" {
		display = m.Provider
	}
	if display == "" {
		display = string(m.Type)
	}
	if m.LastFourDigits != "" {
		display += " •••• " + m.LastFourDigits
	}
	if m.BankName != "" {
		display += " (" + m.BankName + ")"
	}
	return display
}
