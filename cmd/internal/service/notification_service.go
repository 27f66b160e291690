package service

import (
	"clinicdesk/cmd/internal/domain/entity"
	"clinicdesk/cmd/internal/utils"
	"clinicdesk/cmd/internal/utils/apierror"
	"clinicdesk/cmd/internal/utils/clock"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type NotificationRepository interface {
	Save(notification *entity.Notification) error
	FindAll() ([]*entity.Notification, error)
}

type NotificationResponse struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

type DefaultNotificationService struct {
	NotificationRepo NotificationRepository
	Clock            clock.Clock
}

func NewNotificationService(notifRepo NotificationRepository, clk clock.Clock) *DefaultNotificationService {
	return &DefaultNotificationService{NotificationRepo: notifRepo, Clock: clk}
}

func (n *DefaultNotificationService) Notify(kind entity.NotificationType, message string) error {
	notification := &entity.Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Message:   message,
		CreatedAt: n.Clock.Now().UnixMilli(),
	}
	if err := n.NotificationRepo.Save(notification); err != nil {
		return err
	}
	log.Infof("notification (%s): %s", kind, message)
	return nil
}

// GetNotifications returns the log newest first.
func (n *DefaultNotificationService) GetNotifications() ([]*NotificationResponse, apierror.ErrorResponse) {
	items, err := n.NotificationRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch notifications: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*NotificationResponse, len(items))
	for i, item := range items {
		resp[i] = &NotificationResponse{
			ID:      item.ID,
			Type:    string(item.Type),
			Message: item.Message,
			Time:    utils.FormatEpoch(item.CreatedAt),
		}
	}
	return resp, nil
}
