// Package types provides type definitions for structured data used throughout the college-enricher system.
package types

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Entity is one institution to enrich, as read from the input list.
type Entity struct {
	Name string
	URL  string
}

// Key returns the normalized identity key used to detect prior completion.
func (e Entity) Key() string {
	return NormalizeKey(e.Name)
}

// NormalizeKey trims and lowercases an institution name. Entities whose
// names differ only in case or surrounding whitespace share a key.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// MajorsList holds the popular_majors field. The service is asked for a
// JSON array but occasionally returns a pre-joined string; both decode.
type MajorsList []string

// UnmarshalJSON accepts either a JSON array of strings or a single
// comma-separated string.
func (m *MajorsList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*m = list
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	if strings.TrimSpace(joined) == "" {
		*m = nil
		return nil
	}

	parts := strings.Split(joined, ",")
	majors := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			majors = append(majors, part)
		}
	}
	*m = majors
	return nil
}

// String joins the majors with ", " for persistence. An empty list
// serializes to an empty string.
func (m MajorsList) String() string {
	return strings.Join(m, ", ")
}

// IPEDSID tolerates the service returning the identifier as a string,
// a bare number, or null.
type IPEDSID string

// UnmarshalJSON decodes string, number, or null into the identifier.
func (id *IPEDSID) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = IPEDSID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = IPEDSID(n.String())
	return nil
}

// CollegeRecord is the fixed-schema enrichment result for one institution.
// Optional attributes are pointers so a null from the service stays
// distinguishable from a zero and persists as an empty column.
type CollegeRecord struct {
	Name                    string     `json:"name" validate:"required,min=1"`
	URL                     string     `json:"url"`
	City                    string     `json:"city"`
	State                   string     `json:"state"`
	Type                    string     `json:"type"`
	SizeCategory            string     `json:"size_category"`
	AcceptanceRate          *float64   `json:"acceptance_rate" validate:"omitempty,gte=0,lte=1"`
	SAT50thPercentile       *int       `json:"sat_50th_percentile" validate:"omitempty,gte=0"`
	ACT50thPercentile       *int       `json:"act_50th_percentile" validate:"omitempty,gte=0,lte=36"`
	TuitionInState          *int       `json:"tuition_in_state" validate:"omitempty,gte=0"`
	TuitionOutState         *int       `json:"tuition_out_state" validate:"omitempty,gte=0"`
	RoomBoard               *int       `json:"room_board" validate:"omitempty,gte=0"`
	GraduationRate          *float64   `json:"graduation_rate" validate:"omitempty,gte=0,lte=1"`
	RetentionRate           *float64   `json:"retention_rate" validate:"omitempty,gte=0,lte=1"`
	Enrollment              *int       `json:"enrollment" validate:"omitempty,gte=0"`
	StudentFacultyRatio     *int       `json:"student_faculty_ratio" validate:"omitempty,gte=0"`
	Region                  string     `json:"region"`
	PopularMajors           MajorsList `json:"popular_majors"`
	MedianEarnings10Years   *int       `json:"median_earnings_10_years" validate:"omitempty,gte=0"`
	CampusSetting           string     `json:"campus_setting"`
	TestOptional            *bool      `json:"test_optional"`
	ApplicationDeadlineFall string     `json:"application_deadline_fall"`
	ApplicationFee          *int       `json:"application_fee" validate:"omitempty,gte=0"`
	AverageFinancialAid     *int       `json:"average_financial_aid" validate:"omitempty,gte=0"`
	PercentReceivingAid     *float64   `json:"percent_receiving_aid" validate:"omitempty,gte=0,lte=1"`
	TransferAcceptanceRate  *float64   `json:"transfer_acceptance_rate" validate:"omitempty,gte=0,lte=1"`
	Latitude                *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude               *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	HousingAvailable        *bool      `json:"housing_available"`
	IPEDSID                 IPEDSID    `json:"ipeds_id"`
}

// Validate validates the CollegeRecord using the validator.
func (r *CollegeRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Key returns the record's normalized identity key.
func (r *CollegeRecord) Key() string {
	return NormalizeKey(r.Name)
}
