package registry

import (
	"strings"

	"ppetrack/internal/domain"
)

// A rule matches when every marker group is satisfied; a group is
// satisfied when any of its markers appears in the description.
type rule struct {
	tag    domain.Category
	groups [][]string
}

// Rules are evaluated top to bottom, first match wins. Order matters:
// descriptions routinely carry several overlapping keywords (a fire coat
// description contains "COAT" as well as its brand marker), so the more
// specific rules sit above the generic ones.
var rules = []rule{
	{domain.CategoryFireTunic, [][]string{{"COAT"}, {"GOLD PBI", "STRUCTURAL"}}},
	{domain.CategoryRTCTunic, [][]string{{"COAT"}, {"HI VIS", "HI-VIS", "HIVIS"}}},
	{domain.CategoryTrousers, [][]string{{"TROUSER"}}},
	{domain.CategoryFireGloves, [][]string{{"GLOVE"}, {"FIREFIGHTER", "FIRE FIGHTER", "FIREMASTER"}}},
	{domain.CategoryRTCGloves, [][]string{{"GLOVE"}, {"RESCUE", "EXTRICATION"}}},
	{domain.CategoryBoots, [][]string{{"BOOT"}}},
	{domain.CategoryHood, [][]string{{"HOOD"}}},
	{domain.CategoryHelmet, [][]string{{"HELMET", "GALLET", "F1XF"}}},
	{domain.CategoryHalfMask, [][]string{{"HALF"}, {"MASK"}}},
	{domain.CategoryBAMask, [][]string{{"BA"}, {"MASK"}}},
}

func (r rule) matches(text string) bool {
	for _, group := range r.groups {
		hit := false
		for _, marker := range group {
			if strings.Contains(text, marker) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// Classify maps a free-text equipment description to its category tag.
// Matching is case-insensitive and total: text matching no rule yields
// CategoryOther, so an import never fails on unexpected descriptions.
func Classify(description string) domain.Category {
	text := strings.ToUpper(description)
	for _, r := range rules {
		if r.matches(text) {
			return r.tag
		}
	}
	return domain.CategoryOther
}
