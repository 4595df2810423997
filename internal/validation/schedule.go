package validation

import "roomdesk/internal/domain"

func schedulePriority(v *errs, priority string) {
	switch priority {
	case "", domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
	default:
		v.add("priority", "priority must be low, medium, or high")
	}
}

// Schedule validates a schedule creation payload. Unlike contracts the
// date ordering is inclusive: endDate may equal startDate.
func Schedule(in domain.ScheduleInput) error {
	v := &errs{}
	if v.requiredString("title", "title", in.Title) {
		v.maxLen("title", "title", in.Title, 100)
	}
	startOK := v.date("startDate", "start date", in.StartDate)
	endOK := v.date("endDate", "end date", in.EndDate)
	if startOK && endOK && in.EndDate.Before(in.StartDate) {
		v.add("endDate", "end date must be on or after the start date")
	}
	v.requiredString("category", "category", in.Category)
	schedulePriority(v, in.Priority)
	return v.result()
}

// SchedulePatch validates an update payload for the fields present.
func SchedulePatch(p domain.SchedulePatch) error {
	v := &errs{}
	if p.Title != nil {
		if v.requiredString("title", "title", *p.Title) {
			v.maxLen("title", "title", *p.Title, 100)
		}
	}
	if p.StartDate != nil {
		v.date("startDate", "start date", *p.StartDate)
	}
	if p.EndDate != nil {
		v.date("endDate", "end date", *p.EndDate)
	}
	if p.StartDate != nil && p.EndDate != nil &&
		!p.StartDate.IsZero() && !p.EndDate.IsZero() &&
		p.EndDate.Before(*p.StartDate) {
		v.add("endDate", "end date must be on or after the start date")
	}
	if p.Category != nil {
		v.requiredString("category", "category", *p.Category)
	}
	if p.Priority != nil {
		schedulePriority(v, *p.Priority)
	}
	return v.result()
}
