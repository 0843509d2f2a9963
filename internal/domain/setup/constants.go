package setup

import (
	"strings"

	"hris/internal/domain/badge"
)

const Section = "setup"

const (
	SlugDepartments      = "departments"
	SlugDesignations     = "designations"
	SlugHolidays         = "holidays"
	SlugSalaryComponents = "salary-components"
)

type HolidayType string

const (
	HolidayMandatory HolidayType = "Mandatory"
	HolidayOptional  HolidayType = "Optional"
)

var HolidayTypes = badge.NewMapping("holiday type", badge.Neutral, map[HolidayType]badge.Badge{
	HolidayMandatory: {Label: "Mandatory", Tone: badge.ToneRose},
	HolidayOptional:  {Label: "Optional", Tone: badge.ToneBlue},
})

type ComponentType string

const (
	ComponentEarning   ComponentType = "Earning"
	ComponentDeduction ComponentType = "Deduction"
)

var ComponentTypes = badge.NewMapping("component type", badge.Neutral, map[ComponentType]badge.Badge{
	ComponentEarning:   {Label: "Earning", Tone: badge.ToneGreen, Icon: "+"},
	ComponentDeduction: {Label: "Deduction", Tone: badge.ToneRed, Icon: "-"},
})

// GradeBadge colors individual contributor grades (L*) and management grades (M*).
func GradeBadge(grade string) badge.Badge {
	switch {
	case strings.HasPrefix(grade, "M"):
		return badge.Badge{Label: grade, Tone: badge.TonePurple}
	case strings.HasPrefix(grade, "L"):
		return badge.Badge{Label: grade, Tone: badge.ToneIndigo}
	}
	return badge.Badge{Label: grade, Tone: badge.ToneGray}
}

func TaxableBadge(taxable bool) badge.Badge {
	if taxable {
		return badge.Badge{Label: "Taxable", Tone: badge.ToneAmber}
	}
	return badge.Badge{Label: "Non-taxable", Tone: badge.ToneSlate}
}
