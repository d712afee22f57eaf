package services

// Feed topics. Every successful write publishes its topic so live
// subscribers get a fresh collection snapshot.
const (
	TopicMenu     = "menu"
	TopicOrders   = "orders"
	TopicSettings = "settings"
)

// FeedPublisher is implemented by the websocket hub. A nil publisher is
// valid and simply drops notifications (used in tests).
type FeedPublisher interface {
	Publish(topic string)
}

func publish(p FeedPublisher, topic string) {
	if p != nil {
		p.Publish(topic)
	}
}
