package leave

import "hris/internal/domain/badge"

const (
	Section  = "attendance"
	SlugList = "leave-requests"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

var Statuses = badge.NewMapping("leave status", badge.Neutral, map[Status]badge.Badge{
	StatusPending:   {Label: "PENDING", Tone: badge.ToneAmber},
	StatusApproved:  {Label: "APPROVED", Tone: badge.ToneEmerald},
	StatusRejected:  {Label: "REJECTED", Tone: badge.ToneRose},
	StatusCancelled: {Label: "CANCELLED", Tone: badge.ToneSlate},
})

type Type string

const (
	TypeSick   Type = "Sick"
	TypeCasual Type = "Casual"
	TypeAnnual Type = "Annual"
	TypeUnpaid Type = "Unpaid"
)

var Types = badge.NewMapping("leave type", badge.Badge{Tone: badge.ToneGray, Icon: "•"}, map[Type]badge.Badge{
	TypeSick:   {Label: "Sick", Tone: badge.ToneRose, Icon: "•"},
	TypeCasual: {Label: "Casual", Tone: badge.ToneBlue, Icon: "•"},
	TypeAnnual: {Label: "Annual", Tone: badge.TonePurple, Icon: "•"},
	TypeUnpaid: {Label: "Unpaid", Tone: badge.ToneSlate, Icon: "•"},
})
