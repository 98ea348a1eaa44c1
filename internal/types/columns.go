package types

import "strconv"

// OutputColumns is the fixed column order of the enriched output file.
// The writer emits exactly these columns for every row.
var OutputColumns = []string{
	"name", "url", "city", "state", "type", "size_category",
	"acceptance_rate", "sat_50th_percentile", "act_50th_percentile",
	"tuition_in_state", "tuition_out_state", "room_board",
	"graduation_rate", "retention_rate", "enrollment", "student_faculty_ratio",
	"region", "popular_majors", "median_earnings_10_years",
	"campus_setting", "test_optional", "application_deadline_fall",
	"application_fee", "average_financial_aid", "percent_receiving_aid",
	"transfer_acceptance_rate", "latitude", "longitude", "housing_available", "ipeds_id",
}

// Row serializes the record into OutputColumns order. Absent optional
// values become empty cells.
func (r *CollegeRecord) Row() []string {
	return []string{
		r.Name,
		r.URL,
		r.City,
		r.State,
		r.Type,
		r.SizeCategory,
		formatFloat(r.AcceptanceRate),
		formatInt(r.SAT50thPercentile),
		formatInt(r.ACT50thPercentile),
		formatInt(r.TuitionInState),
		formatInt(r.TuitionOutState),
		formatInt(r.RoomBoard),
		formatFloat(r.GraduationRate),
		formatFloat(r.RetentionRate),
		formatInt(r.Enrollment),
		formatInt(r.StudentFacultyRatio),
		r.Region,
		r.PopularMajors.String(),
		formatInt(r.MedianEarnings10Years),
		r.CampusSetting,
		formatBool(r.TestOptional),
		r.ApplicationDeadlineFall,
		formatInt(r.ApplicationFee),
		formatInt(r.AverageFinancialAid),
		formatFloat(r.PercentReceivingAid),
		formatFloat(r.TransferAcceptanceRate),
		formatFloat(r.Latitude),
		formatFloat(r.Longitude),
		formatBool(r.HousingAvailable),
		string(r.IPEDSID),
	}
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}
