package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamPostEvents godoc
// @Summary      게시글 변경 알림 WebSocket
// @Description  게시글이 생성/수정/삭제될 때마다 {"type","id","at"} JSON 메시지를 보냅니다.
// @Description  <br>
// @Description  **참고: 이것은 표준 HTTP API가 아닙니다.** `ws://` 또는 `wss://` 로 연결하세요.
// @Tags         WebSocket
// @Success      101 {string} string "101 Switching Protocols"
// @Router       /ws/posts [get]
func (h *Handler) StreamPostEvents(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("StreamPostEvents(): failed to upgrade to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	feed, cancel := h.events.Subscribe()
	defer cancel()
	log.Printf("StreamPostEvents(): client %s subscribed", c.ClientIP())

	// 클라이언트 -> 서버, 읽기 전담 (pong 처리와 연결 종료 감지용)
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case e, ok := <-feed:
			if !ok {
				log.Printf("StreamPostEvents(): feed closed for %s", c.ClientIP())
				conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(e); err != nil {
				log.Printf("StreamPostEvents(): failed to send event: %v", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-closed:
			log.Printf("StreamPostEvents(): client %s disconnected", c.ClientIP())
			return
		}
	}
}
