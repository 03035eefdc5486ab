package ws

import (
	"net/http"
)

// DefaultRoom is the feed every client joins unless a roomID is given.
const DefaultRoom = "feed"

// FeedHandler upgrades the connection and keeps it registered until the
// client goes away. Messages are pushed by the hub; inbound frames are
// drained and ignored.
func FeedHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, "ws upgrade failed", http.StatusBadRequest)
			return
		}

		roomID := r.URL.Query().Get("roomID")
		if roomID == "" {
			roomID = DefaultRoom
		}

		hub.Register(roomID, conn)
		defer hub.Unregister(roomID, conn)

		hub.SendToRoom(roomID, []byte(`{"status":"connected"}`))

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
