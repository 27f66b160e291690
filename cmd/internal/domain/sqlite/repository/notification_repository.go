package repository

import (
	"clinicdesk/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultNotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *DefaultNotificationRepository {
	return &DefaultNotificationRepository{db: db}
}

func (n *DefaultNotificationRepository) Save(notification *entity.Notification) error {
	return n.db.Create(notification).Error
}

// FindAll returns the log newest first.
func (n *DefaultNotificationRepository) FindAll() ([]*entity.Notification, error) {
	var items []*entity.Notification
	err := n.db.Order("seq desc").Find(&items).Error
	return items, err
}
