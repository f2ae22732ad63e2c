package transform

import (
	"strings"

	"netanyaRelay/internal/domain"
)

// ToPayload maps a validated submission onto the incidents.ashx wire record.
// Municipality fields always come from domain.NetanyaMuni.
func ToPayload(sub domain.IncidentSubmission) domain.DownstreamPayload {
	c := domain.NetanyaMuni
	return domain.DownstreamPayload{
		EventCallSourceID: c.EventCallSourceID,
		CityCode:          c.CityCode,
		CityDesc:          c.CityDesc,
		EventCallCenterID: c.EventCallCenterID,
		StreetCode:        c.StreetCode,
		StreetDesc:        c.StreetDesc,
		ContactUsType:     c.ContactUsType,

		EventCallDesc:   description(sub),
		HouseNumber:     sub.Street.HouseNumber,
		CallerFirstName: sub.UserData.FirstName,
		CallerLastName:  sub.UserData.LastName,
		CallerTZ:        deref(sub.UserData.UserID),
		CallerPhone1:    sub.UserData.Phone,
		CallerEmail:     deref(sub.UserData.Email),
	}
}

// description prefers the citizen's own text over the category default.
func description(sub domain.IncidentSubmission) string {
	if sub.CustomText != nil && strings.TrimSpace(*sub.CustomText) != "" {
		return *sub.CustomText
	}
	return sub.Category.EventCallDesc
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
