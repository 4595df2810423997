package validation

import (
	"fmt"

	"roomdesk/internal/domain"
)

func roomFloor(v *errs, floor int) {
	if floor < 1 {
		v.add("floor", "floor must be 1 or more")
	} else if floor > 100 {
		v.add("floor", "floor must be 100 or less")
	}
}

func roomArea(v *errs, area float64) {
	if area < 1 {
		v.add("area", "area must be at least 1 m²")
	} else if area > 1000 {
		v.add("area", "area must be at most 1000 m²")
	}
}

// Room validates a room creation payload.
func Room(in domain.RoomInput) error {
	v := &errs{}
	if v.requiredString("roomNumber", "room number", in.RoomNumber) {
		v.maxLen("roomNumber", "room number", in.RoomNumber, 10)
	}
	roomFloor(v, in.Floor)
	v.requiredString("roomType", "room type", in.RoomType)
	roomArea(v, in.Area)
	v.currency("monthlyRent", "monthly rent", in.MonthlyRent)
	v.currency("deposit", "deposit", in.Deposit)
	v.currency("managementFee", "management fee", in.ManagementFee)
	seen := map[string]bool{}
	for i, a := range in.Amenities {
		if seen[a] {
			v.add("amenities", fmt.Sprintf("amenity %q is listed twice (entry %d)", a, i+1))
		}
		seen[a] = true
	}
	return v.result()
}

// RoomPatch validates an update payload for the fields present.
func RoomPatch(p domain.RoomPatch) error {
	v := &errs{}
	if p.RoomNumber != nil {
		if v.requiredString("roomNumber", "room number", *p.RoomNumber) {
			v.maxLen("roomNumber", "room number", *p.RoomNumber, 10)
		}
	}
	if p.Floor != nil {
		roomFloor(v, *p.Floor)
	}
	if p.RoomType != nil {
		v.requiredString("roomType", "room type", *p.RoomType)
	}
	if p.Area != nil {
		roomArea(v, *p.Area)
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
	if p.Amenities != nil {
		seen := map[string]bool{}
		for i, a := range *p.Amenities {
			if seen[a] {
				v.add("amenities", fmt.Sprintf("amenity %q is listed twice (entry %d)", a, i+1))
			}
			seen[a] = true
		}
	}
	return v.result()
}
