package entity

// JobTrackingEntry is one personnel-move announcement from the job tracking
// feed ("Movers & Shakers"). AppointmentDate is a plain YYYY-MM-DD string.
type JobTrackingEntry struct {
	ID                string   `json:"id"`
	FullName          string   `json:"full_name"`
	Location          *string  `json:"location,omitempty"`
	BankName          string   `json:"bank_name"`
	PreviousCompany   *string  `json:"previous_company,omitempty"`
	PreviousRoleTitle *string  `json:"previous_role_title,omitempty"`
	RoleTitle         string   `json:"role_title"`
	AnnouncementType  string   `json:"announcement_type"`
	JobDescription    *string  `json:"job_description,omitempty"`
	Background        *string  `json:"background,omitempty"`
	AppointmentDate   *string  `json:"appointment_date,omitempty"`
	PreviousRoles     []string `json:"previous_roles,omitempty"`
	KeySkills         []string `json:"key_skills,omitempty"`
	NewsSourceURL     *string  `json:"news_source_url,omitempty"`
	CreatedAt         string   `json:"created_at"`
}
