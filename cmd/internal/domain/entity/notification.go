package entity

type NotificationType string

const (
	NotificationReminder NotificationType = "reminder"
	NotificationSystem   NotificationType = "system"
)

type Notification struct {
	Seq       uint             `gorm:"primaryKey"` // insertion order, newest has the highest
	ID        string           `gorm:"not null;uniqueIndex"`
	Type      NotificationType `gorm:"not null"`
	Message   string           `gorm:"not null"`
	CreatedAt int64            `gorm:"not null;autoCreateTime:false"` // epoch millis
}
