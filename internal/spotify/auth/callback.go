package auth

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"
)

// CallbackResult contains the query parameters of the OAuth redirect.
type CallbackResult struct {
	Code  string
	State string
	Error string
}

// Denied reports whether the user or the authorization server refused access.
func (r CallbackResult) Denied() bool {
	return r.Error != ""
}

// CallbackServer is the single-use local listener for the OAuth redirect.
type CallbackServer struct {
	server   *http.Server
	listener net.Listener
	result   chan CallbackResult
}

var callbackPage = template.Must(template.New("callback").Parse(`<!DOCTYPE html>
<html>
<head><title>Spotify CLI - {{.Title}}</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 4em;">
<h1 style="color: {{.Color}};">{{.Title}}</h1>
{{if .Detail}}<p>{{.Detail}}</p>
{{end}}<p>You can close this window and return to the terminal.</p>
</body>
</html>
`))

type callbackView struct {
	Title  string
	Color  string
	Detail string
}

// NewCallbackServer listens on the loopback interface at port (0 picks a free port).
func NewCallbackServer(port int) (*CallbackServer, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %d: %w", port, err)
	}

	cs := &CallbackServer{
		listener: listener,
		result:   make(chan CallbackResult, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /callback", cs.handleCallback)

	cs.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
	return cs, nil
}

// Start serves the redirect endpoint in the background.
func (cs *CallbackServer) Start() {
	go func() {
		_ = cs.server.Serve(cs.listener)
	}()
}

// Wait blocks until a redirect arrives or ctx is done.
func (cs *CallbackServer) Wait(ctx context.Context) (CallbackResult, error) {
	select {
	case result := <-cs.result:
		return result, nil
	case <-ctx.Done():
		return CallbackResult{}, ctx.Err()
	}
}

// Shutdown stops the server and releases the port, whether or not Start
// ever handed the listener to the server.
func (cs *CallbackServer) Shutdown(ctx context.Context) error {
	err := cs.server.Shutdown(ctx)
	if cerr := cs.listener.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) && err == nil {
		err = cerr
	}
	return err
}

// Port returns the port the server is listening on.
func (cs *CallbackServer) Port() int {
	return cs.listener.Addr().(*net.TCPAddr).Port
}

func (cs *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	result := CallbackResult{
		Code:  query.Get("code"),
		State: query.Get("state"),
		Error: query.Get("error"),
	}

	if result.Code == "" && !result.Denied() {
		// Not a redirect from the authorization server.
		render(w, http.StatusBadRequest, callbackView{
			Title:  "Missing authorization code",
			Color:  "#E22134",
			Detail: "Start the login again from the terminal.",
		})
		return
	}

	select {
	case cs.result <- result:
	default:
		// Only the first redirect counts.
	}

	if result.Denied() {
		render(w, http.StatusBadRequest, callbackView{
			Title:  "Authentication Failed",
			Color:  "#E22134",
			Detail: "Error: " + result.Error,
		})
		return
	}
	render(w, http.StatusOK, callbackView{
		Title: "Authentication Successful!",
		Color: "#1DB954",
	})
}

func render(w http.ResponseWriter, status int, view callbackView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = callbackPage.Execute(w, view)
}
