package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Wage type constants
var (
	WageTypeHourly  = "hourly"
	WageTypeDaily   = "daily"
	WageTypeMonthly = "monthly"
	WageTypeFixed   = "fixed"
	WageTypeNone    = "none"
)

var wageTypes = []string{WageTypeHourly, WageTypeDaily, WageTypeMonthly, WageTypeFixed, WageTypeNone}

// EditableJobInfo is part of job that can be edited after creation
type EditableJobInfo struct {
	Title       string         `gorm:"type:text" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	WageAmount  int64          `json:"wage_amount"`
	WageType    string         `gorm:"type:text;default:'none'" json:"wage_type"`
	JobDate     *time.Time     `gorm:"type:timestamp" json:"job_date,omitempty"`
	Location    string         `gorm:"type:text" json:"location"`
	MaxMembers  int            `gorm:"default:1" json:"max_members"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
}

// Validate checks the required fields and enumerations of a job payload.
func (info *EditableJobInfo) Validate() error {
	if info.Title == "" {
		return fmt.Errorf("job title must not be empty")
	}
	if info.MaxMembers < 1 {
		return fmt.Errorf("max_members must be at least 1")
	}
	if info.WageType != "" && !containsString(wageTypes, info.WageType) {
		return fmt.Errorf("invalid wage type: %s", info.WageType)
	}
	return nil
}

// Job is gorm model for store job posting data in DB
type Job struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	EmployerID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"employer_id"`
	Employer   User      `gorm:"foreignKey:EmployerID;references:ID" json:"employer"`
	EditableJobInfo
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`

	Groups       []Group       `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"applications"`
}

// JobResponse is the response struct for a job with the caller's application status
type JobResponse struct {
	ID         uint      `json:"id"`
	EmployerID uuid.UUID `json:"employer_id"`
	Employer   User      `json:"employer"`
	CreatedAt  time.Time `json:"created_at"`
	UserApply  bool      `json:"user_apply"`
	EditableJobInfo
}

// ToJobResponse converts Job to JobResponse, marking whether the given
// worker already has an individual application on this job.
func (j *Job) ToJobResponse(user User) (JobResponse, error) {

	var resp JobResponse

	b, err := json.Marshal(j)
	if err != nil {
		return resp, err
	}

	if err := json.Unmarshal(b, &resp); err != nil {
		return resp, err
	}

	userApply := false

	if user.Role == RoleWorker {
		for _, application := range j.Applications {
			if application.UserID != nil && application.UserID.String() == user.ID.String() {
				userApply = true
				break
			}
		}
	}
	resp.UserApply = userApply

	return resp, nil
}

func containsString(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
