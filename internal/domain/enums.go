package domain

// Color is the relevance color assigned to a syllabus topic.
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
	ColorPurple Color = "purple"
)

// ValidColors is the canonical set of accepted relevance colors.
var ValidColors = map[Color]bool{
	ColorGreen: true, ColorYellow: true, ColorRed: true, ColorPurple: true,
}

type ActivityKind string

const (
	KindFirstContact ActivityKind = "first_contact"
	KindReview       ActivityKind = "review"
)

type ActivityStatus string

const (
	StatusCompleted ActivityStatus = "completed"
	StatusPending   ActivityStatus = "pending"
	StatusOverdue   ActivityStatus = "overdue"
	StatusOffPlan   ActivityStatus = "off_plan"
)

// OffPlanKind qualifies an off-plan activity: performed before its planned
// date, after its planned date, or never planned at all.
type OffPlanKind string

const (
	OffPlanEarly       OffPlanKind = "early"
	OffPlanLateButDone OffPlanKind = "late_but_done"
	OffPlanExtra       OffPlanKind = "extra"
)
