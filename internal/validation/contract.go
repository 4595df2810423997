package validation

import "roomdesk/internal/domain"

// Contract validates a contract creation payload, including the strict
// endDate > startDate ordering.
func Contract(in domain.ContractInput) error {
	v := &errs{}
	if in.CustomerID < 1 {
		v.add("customerId", "a customer must be selected")
	}
	if in.RoomID < 1 {
		v.add("roomId", "a room must be selected")
	}
	startOK := v.date("startDate", "start date", in.StartDate)
	endOK := v.date("endDate", "end date", in.EndDate)
	if startOK && endOK && !in.EndDate.After(in.StartDate) {
		v.add("endDate", "end date must be after the start date")
	}
	v.currency("monthlyRent", "monthly rent", in.MonthlyRent)
	v.currency("deposit", "deposit", in.Deposit)
	v.currency("managementFee", "management fee", in.ManagementFee)
	return v.result()
}

// ContractPatch validates an update payload for the fields present.
// When both dates are patched together the ordering rule still applies.
func ContractPatch(p domain.ContractPatch) error {
	v := &errs{}
	if p.StartDate != nil {
		v.date("startDate", "start date", *p.StartDate)
	}
	if p.EndDate != nil {
		v.date("endDate", "end date", *p.EndDate)
	}
	if p.StartDate != nil && p.EndDate != nil &&
		!p.StartDate.IsZero() && !p.EndDate.IsZero() &&
		!p.EndDate.After(*p.StartDate) {
		v.add("endDate", "end date must be after the start date")
	}
	if p.MonthlyRent != nil {
		v.currency("monthlyRent", "monthly rent", *p.MonthlyRent)
	}
	if p.Deposit != nil {
		v.currency("deposit", "deposit", *p.Deposit)
	}
	if p.ManagementFee != nil {
		v.currency("managementFee", "management fee", *p.ManagementFee)
	}
	if p.Status != nil {
		switch *p.Status {
		case domain.ContractActive, domain.ContractExpired, domain.ContractTerminated:
		default:
			v.add("status", "status must be active, expired, or terminated")
		}
	}
	return v.result()
}
