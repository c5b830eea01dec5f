package model

import "time"

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	FirstName *string   `gorm:"type:varchar(50)" json:"first_name"`
	LastName  *string   `gorm:"type:varchar(50)" json:"last_name"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
