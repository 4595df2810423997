package validation

import "roomdesk/internal/domain"

// Branch validates a branch creation payload.
func Branch(in domain.BranchInput) error {
	v := &errs{}
	if v.requiredString("name", "branch name", in.Name) {
		v.minLen("name", "branch name", in.Name, 2)
		v.maxLen("name", "branch name", in.Name, 50)
	}
	if v.requiredString("code", "branch code", in.Code) {
		v.minLen("code", "branch code", in.Code, 2)
		v.maxLen("code", "branch code", in.Code, 10)
	}
	v.requiredString("address", "address", in.Address)
	if v.requiredString("phone", "phone number", in.Phone) {
		v.phone("phone", in.Phone)
	}
	v.requiredString("managerName", "manager name", in.ManagerName)
	if v.requiredString("managerPhone", "manager phone number", in.ManagerPhone) {
		v.phone("managerPhone", in.ManagerPhone)
	}
	return v.result()
}

// BranchPatch validates an update payload for the fields present.
func BranchPatch(p domain.BranchPatch) error {
	v := &errs{}
	if p.Name != nil {
		v.minLen("name", "branch name", *p.Name, 2)
		v.maxLen("name", "branch name", *p.Name, 50)
	}
	if p.Code != nil {
		v.minLen("code", "branch code", *p.Code, 2)
		v.maxLen("code", "branch code", *p.Code, 10)
	}
	if p.Address != nil && *p.Address == "" {
		v.add("address", "address is required")
	}
	if p.Phone != nil {
		v.phone("phone", *p.Phone)
	}
	if p.ManagerName != nil && *p.ManagerName == "" {
		v.add("managerName", "manager name is required")
	}
	if p.ManagerPhone != nil {
		v.phone("managerPhone", *p.ManagerPhone)
	}
	return v.result()
}
