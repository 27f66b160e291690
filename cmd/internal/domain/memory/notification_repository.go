package memory

import (
	"clinicdesk/cmd/internal/domain/entity"
	"sync"
)

// NotificationRepository is the append-only notification log. There is no
// eviction; the log grows for the life of the process.
type NotificationRepository struct {
	mu    sync.RWMutex
	items []entity.Notification // oldest first
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (n *NotificationRepository) Save(notification *entity.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	notification.Seq = uint(len(n.items) + 1)
	n.items = append(n.items, *notification)
	return nil
}

// FindAll returns the log newest first.
func (n *NotificationRepository) FindAll() ([]*entity.Notification, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]*entity.Notification, 0, len(n.items))
	for i := len(n.items) - 1; i >= 0; i-- {
		item := n.items[i]
		out = append(out, &item)
	}
	return out, nil
}
