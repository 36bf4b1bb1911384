package domain

// RawPlanRow is one spreadsheet row before cleaning. Line is the 1-based
// sheet row it was read from.
type RawPlanRow struct {
	Line       int
	DoctorName string
	Region     string
	District   string
	Amount     string
	Mode       string
	Workplace  string
	Specialty  string
	Phone      string
	Group      string
	Manager    string
	CardNumber string
}

// UnassignedGroup is the group of rows that carry none.
const UnassignedGroup = "UNASSIGNED"

// DefaultPlanMonth is the month assigned to imports that do not name one.
const DefaultPlanMonth = 12
