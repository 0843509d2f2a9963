package admin

import "hris/internal/domain/badge"

const Section = "admin"

const (
	SlugUserManagement = "user-management"
	SlugRoles          = "roles-and-permissions"
)

type AccessLevel string

const (
	AccessFull     AccessLevel = "Full"
	AccessHigh     AccessLevel = "High"
	AccessMedium   AccessLevel = "Medium"
	AccessLow      AccessLevel = "Low"
	AccessReadOnly AccessLevel = "Read Only"
)

var AccessLevels = badge.NewMapping("access level", badge.Neutral, map[AccessLevel]badge.Badge{
	AccessFull:     {Label: "Full", Tone: badge.ToneRed, Icon: "●●●●"},
	AccessHigh:     {Label: "High", Tone: badge.ToneOrange, Icon: "●●●○"},
	AccessMedium:   {Label: "Medium", Tone: badge.ToneYellow, Icon: "●●○○"},
	AccessLow:      {Label: "Low", Tone: badge.ToneBlue, Icon: "●○○○"},
	AccessReadOnly: {Label: "Read Only", Tone: badge.ToneGray, Icon: "○○○○"},
})

// RoleBadge colors a user's role name. Any role outside the built-in set is neutral.
func RoleBadge(role string) badge.Badge {
	switch role {
	case "Super Admin":
		return badge.Badge{Label: role, Tone: badge.TonePurple}
	case "HR Manager":
		return badge.Badge{Label: role, Tone: badge.ToneBlue}
	case "Payroll Admin":
		return badge.Badge{Label: role, Tone: badge.ToneEmerald}
	}
	return badge.Badge{Label: role, Tone: badge.ToneGray}
}
