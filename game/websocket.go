package game

import (
	"time"

	"github.com/gorilla/websocket"
)

const pongWait = time.Minute

type gorillaWebSocketWrapper struct {
	socket *websocket.Conn
}

func (wc *gorillaWebSocketWrapper) Write(data []byte) error {
	return wc.socket.WriteMessage(websocket.TextMessage, data)
}

func (wc *gorillaWebSocketWrapper) Ping() error {
	return wc.socket.WriteMessage(websocket.PingMessage, nil)
}

func (wc *gorillaWebSocketWrapper) Read() ([]byte, error) {
	_, p, err := wc.socket.ReadMessage()
	return p, err
}

func (wc *gorillaWebSocketWrapper) Close() {
	wc.socket.SetWriteDeadline(time.Now().Add(time.Second * 20))
	wc.socket.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	wc.socket.Close()
}

func NewGorillaWebSocketWrapper(conn *websocket.Conn) *gorillaWebSocketWrapper {
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(appData string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	return &gorillaWebSocketWrapper{conn}
}
