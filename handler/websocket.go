package handler

import (
	"cafe_manager/database"
	"cafe_manager/helper"
	"context"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

var (
	cafeClients = make(map[uint]map[*websocket.Conn]bool)
	cafeMu      sync.Mutex
)

// CafeOrderSocket relays confirmed-payment events for one cafe to every
// connected dashboard.
func CafeOrderSocket(c *websocket.Conn) {
	cafeNoStr := c.Params("cafeNo")
	no64, _ := strconv.ParseUint(cafeNoStr, 10, 64)
	cafeNo := uint(no64)

	defer func() {
		cafeMu.Lock()
		if cafeClients[cafeNo] != nil {
			delete(cafeClients[cafeNo], c)
		}
		cafeMu.Unlock()
		c.Close()
	}()

	cafeMu.Lock()
	if cafeClients[cafeNo] == nil {
		cafeClients[cafeNo] = make(map[*websocket.Conn]bool)
	}
	cafeClients[cafeNo][c] = true
	cafeMu.Unlock()

	pubsub := database.Redis.Subscribe(
		context.Background(),
		helper.CafeOrderChannel(cafeNo),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		cafeMu.Lock()
		for conn := range cafeClients[cafeNo] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(cafeClients[cafeNo], conn)
			}
		}
		cafeMu.Unlock()
	}
}
