package models

// Appointment books a patient with a doctor. DoctorID is checked only when
// the appointment is created; deleting the doctor leaves it in place.
type Appointment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PatientName string    `json:"patientName" gorm:"size:100;not null"`
	DoctorID    uint      `json:"doctorId" gorm:"index;not null"`
	Time        TimeOfDay `json:"time" gorm:"type:time;not null"`
}
