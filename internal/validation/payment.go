package validation

import "roomdesk/internal/domain"

// Payment validates a payment creation payload.
func Payment(in domain.PaymentInput) error {
	v := &errs{}
	if in.ContractID < 1 {
		v.add("contractId", "a contract must be selected")
	}
	v.date("paymentDate", "payment date", in.PaymentDate)
	v.currency("amount", "amount", in.Amount)
	v.requiredString("paymentType", "payment type", in.PaymentType)
	v.requiredString("paymentMethod", "payment method", in.PaymentMethod)
	return v.result()
}

// PaymentPatch validates an update payload for the fields present.
func PaymentPatch(p domain.PaymentPatch) error {
	v := &errs{}
	if p.PaymentDate != nil {
		v.date("paymentDate", "payment date", *p.PaymentDate)
	}
	if p.Amount != nil {
		v.currency("amount", "amount", *p.Amount)
	}
	if p.PaymentType != nil {
		v.requiredString("paymentType", "payment type", *p.PaymentType)
	}
	if p.PaymentMethod != nil {
		v.requiredString("paymentMethod", "payment method", *p.PaymentMethod)
	}
	return v.result()
}
