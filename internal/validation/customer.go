package validation

import "roomdesk/internal/domain"

// Customer validates a customer creation payload.
func Customer(in domain.CustomerInput) error {
	v := &errs{}
	if v.requiredString("name", "name", in.Name) {
		v.minLen("name", "name", in.Name, 2)
		v.maxLen("name", "name", in.Name, 50)
	}
	if v.requiredString("phone", "phone number", in.Phone) {
		v.phone("phone", in.Phone)
	}
	if in.Email != "" {
		v.email("email", in.Email)
	}
	v.requiredString("address", "address", in.Address)
	if in.BusinessNumber != "" {
		v.businessNumber("businessNumber", in.BusinessNumber)
	}
	return v.result()
}

// CustomerPatch validates an update payload: the creation rules minus
// required-ness, applied only to the fields present.
func CustomerPatch(p domain.CustomerPatch) error {
	v := &errs{}
	if p.Name != nil {
		v.minLen("name", "name", *p.Name, 2)
		v.maxLen("name", "name", *p.Name, 50)
	}
	if p.Phone != nil {
		v.phone("phone", *p.Phone)
	}
	if p.Email != nil && *p.Email != "" {
		v.email("email", *p.Email)
	}
	if p.Address != nil && *p.Address == "" {
		v.add("address", "address is required")
	}
	if p.BusinessNumber != nil && *p.BusinessNumber != "" {
		v.businessNumber("businessNumber", *p.BusinessNumber)
	}
	return v.result()
}
