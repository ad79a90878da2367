package db_models

import "time"

// Feedback is one customer submission tied to one product. ProductID is
// the external product key, never a local foreign key. CreatedAt is set
// once at insert and stays immutable through edits.
type Feedback struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID string    `gorm:"type:varchar(64);not null;index" json:"productId"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
