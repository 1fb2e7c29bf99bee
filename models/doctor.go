package models

// Doctor is a practitioner with a weekly availability window.
type Doctor struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"size:100;not null"`
	Specialization string    `json:"specialization" gorm:"size:100;not null"`
	Qualification  string    `json:"qualification" gorm:"size:100;not null"`
	Days           Weekdays  `json:"days" gorm:"type:text[];not null"`
	ReportTime     TimeOfDay `json:"reportTime" gorm:"type:time;not null"`
	LeaveTime      TimeOfDay `json:"leaveTime" gorm:"type:time;not null"`
}
