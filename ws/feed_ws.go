package ws

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/Ashitosh2004/hotellucky/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// SnapshotFunc loads the current full contents of one collection.
type SnapshotFunc func() (any, error)

// FilterFunc narrows a collection snapshot to one table's records. Topics
// with a filter registered carry per-table data: staff identities get the
// full stream, anonymous subscribers must scope to a single table.
type FilterFunc func(items any, table int) any

// SnapshotMessage is what subscribers receive: the topic plus a complete
// point-in-time listing of that collection. Clients replace, not merge.
type SnapshotMessage struct {
	Topic string `json:"topic"`
	Items any    `json:"items"`
}

// FeedHub fans collection snapshots out to websocket subscribers. A client
// subscribes to one or more topics; every write to a collection publishes
// its topic and every subscriber gets a fresh snapshot.
type FeedHub struct {
	clients    map[string]map[*websocket.Conn]int // topic -> client -> table scope (0 = full)
	broadcast  chan string                        // topic to re-snapshot
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	snapshots  map[string]SnapshotFunc
	filters    map[string]FilterFunc
}

// Subscription: one connection, the topics it follows, and an optional
// table scope for filtered topics.
type Subscription struct {
	Conn   *websocket.Conn
	Topics []string
	Table  int
}

func NewFeedHub(snapshots map[string]SnapshotFunc, filters map[string]FilterFunc) *FeedHub {
	return &FeedHub{
		clients:    make(map[string]map[*websocket.Conn]int),
		broadcast:  make(chan string),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		snapshots:  snapshots,
		filters:    filters,
	}
}

// Publish queues a fresh snapshot of the topic for all its subscribers.
// Called by the service layer after every successful write.
func (h *FeedHub) Publish(topic string) {
	h.broadcast <- topic
}

func (h *FeedHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			for _, topic := range sub.Topics {
				if h.clients[topic] == nil {
					h.clients[topic] = make(map[*websocket.Conn]int)
				}
				h.clients[topic][sub.Conn] = sub.Table
			}
			h.mu.Unlock()

			// initial snapshot per topic so the client starts complete
			for _, topic := range sub.Topics {
				items, ok := h.load(topic)
				if !ok {
					continue
				}
				if err := sub.Conn.WriteJSON(h.message(topic, items, sub.Table)); err != nil {
					log.Printf("ws write error: %v", err)
				}
			}

		case sub := <-h.unregister:
			h.mu.Lock()
			for _, topic := range sub.Topics {
				if _, ok := h.clients[topic][sub.Conn]; ok {
					delete(h.clients[topic], sub.Conn)
				}
			}
			h.mu.Unlock()
			sub.Conn.Close()

		case topic := <-h.broadcast:
			items, ok := h.load(topic)
			if !ok {
				continue
			}
			h.mu.Lock()
			for conn, table := range h.clients[topic] {
				if err := conn.WriteJSON(h.message(topic, items, table)); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[topic], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *FeedHub) load(topic string) (any, bool) {
	loadFn, ok := h.snapshots[topic]
	if !ok {
		return nil, false
	}
	items, err := loadFn()
	if err != nil {
		log.Printf("snapshot %s error: %v", topic, err)
		return nil, false
	}
	return items, true
}

func (h *FeedHub) message(topic string, items any, table int) *SnapshotMessage {
	if table > 0 {
		if filter, ok := h.filters[topic]; ok {
			items = filter(items, table)
		}
	}
	return &SnapshotMessage{Topic: topic, Items: items}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/feed?topics=menu,orders. Staff pass ?token=; anonymous
// customers subscribing to a filtered topic must scope it with ?table=n.
func (h *FeedHub) HandleWebSocket(c *gin.Context) {
	var topics []string
	for _, t := range strings.Split(c.Query("topics"), ",") {
		t = strings.TrimSpace(t)
		if _, ok := h.snapshots[t]; ok {
			topics = append(topics, t)
		}
	}
	if len(topics) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid topics"})
		return
	}

	table, _ := strconv.Atoi(c.Query("table"))
	if utils.CurrentRole(c) != "" {
		// staff always get the unscoped stream
		table = 0
	} else {
		for _, t := range topics {
			if _, restricted := h.filters[t]; restricted && table <= 0 {
				c.JSON(http.StatusForbidden, gin.H{"error": "topic " + t + " requires a token or a table scope"})
				return
			}
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, Topics: topics, Table: table}
	h.register <- sub

	go h.listen(sub)
}

// listen drains the connection until the client goes away, then tears the
// subscription down. The feed is one-way; inbound frames are discarded.
func (h *FeedHub) listen(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
