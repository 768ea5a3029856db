package main

import (
	_ "embed"
	"html"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/tomz197/skyguard/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	logger := config.NewLogger(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	sshPort := config.GetEnv("SSH_PORT", "2222")

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, landingPage(sshHost, sshPort)); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// landingPage serves the page explaining how to connect over SSH.
func landingPage(sshHost, sshPort string) http.Handler {
	page := strings.NewReplacer(
		"{{.SSHHost}}", html.EscapeString(sshHost),
		"{{.SSHPort}}", html.EscapeString(sshPort),
	).Replace(htmlPage)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	})
	return mux
}
