package models

type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"size:80;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password;size:200;not null"`
}
