package service

import "github.com/MKhiriev/go-video-notes/models"

// NopNotifier drops every notification.
type NopNotifier struct{}

func (NopNotifier) Notify(models.Notification) {}

// ChannelNotifier delivers notifications to a buffered channel. When the
// buffer is full the oldest pending notification is dropped, so Notify never
// blocks.
type ChannelNotifier struct {
	ch chan models.Notification
}

func NewChannelNotifier(size int) *ChannelNotifier {
	if size <= 0 {
		size = 16
	}
	return &ChannelNotifier{ch: make(chan models.Notification, size)}
}

func (n *ChannelNotifier) Notify(notification models.Notification) {
	for {
		select {
		case n.ch <- notification:
			return
		default:
		}

		select {
		case <-n.ch:
		default:
		}
	}
}

// C is read by the UI.
func (n *ChannelNotifier) C() <-chan models.Notification {
	return n.ch
}
