package console

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  512,
	WriteBufferSize: 512,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type MessageIn struct {
	Query string `json:"query"`
	Id    int    `json:"id"`
	Type  string `json:"type"`
}

type MessageOut struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
	Id    int    `json:"id"`
	Type  string `json:"type"`
}

func NewMessage(app *App, data MessageIn) MessageOut {
	msg := MessageOut{Id: data.Id, Type: data.Type}
	switch data.Type {
	case "count":
		msg.Data = app.Len()
	case "items":
		msg.Data = app.Values()
	case "exec":
		if cmd, _, _ := commandParse(data.Query); isQuit(cmd) {
			msg.Error = "quit is not available remotely"
			break
		}
		out, err := app.Process(data.Query)
		if err != nil {
			msg.Error = err.Error()
		}
		msg.Data = out
	default:
		msg.Error = "unknown message type `" + data.Type + "`"
	}
	return msg
}

// Handler serves the websocket bridge on /ws.
func (s *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler(s))
	return mux
}

// StartWebsocket serves the bridge until ctx is done. TLS is used when both
// cert and key are configured.
func StartWebsocket(ctx context.Context, app *App, cfg *Config) error {
	srv := &http.Server{Addr: cfg.Address, Handler: app.Handler()}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	var err error
	if cfg.CertPath == "" || cfg.KeyPath == "" {
		log.Printf("\033[33mwarning: no TLS certificate/key, serving plain ws://%s/ws\033[0m", cfg.Address)
		err = srv.ListenAndServe()
	} else {
		err = srv.ListenAndServeTLS(expandHome(cfg.CertPath), expandHome(cfg.KeyPath))
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(p string) string {
	rest, ok := strings.CutPrefix(p, "~/")
	if !ok {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, rest)
}

func echo(conn *websocket.Conn, app *App) {
	defer func() {
		conn.Close()
		app.setConnected(false)
	}()

	app.setConnected(true)

	for {
		var data MessageIn
		if err := conn.ReadJSON(&data); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println(err)
			}
			break
		}

		if err := conn.WriteJSON(NewMessage(app, data)); err != nil {
			log.Println(err)
			break
		}
	}
}

type HTTPHandler func(w http.ResponseWriter, r *http.Request)

func wsHandler(app *App) HTTPHandler {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println(err)
			return
		}
		go echo(conn, app)
	}
}
