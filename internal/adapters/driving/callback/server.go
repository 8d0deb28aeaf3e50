// Package callback runs the local HTTP server that receives OAuth provider
// redirects. Each request is translated into a navigation event on the
// public origin, so the exchange flow sees the same URL the provider
// redirected the browser to.
package callback

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hellolumen/lumenctl/internal/logger"
)

// Visitor receives the URLs observed by the server.
type Visitor interface {
	Visit(rawURL string) error
}

// Server listens for provider redirects and forwards them as visits.
type Server struct {
	addr         string
	publicOrigin string
	visitor      Visitor

	server *http.Server
}

// NewServer creates a callback server. publicOrigin is the scheme and host
// registered with the OAuth providers (e.g. behind a tunnel or reverse
// proxy); observed request paths are resolved against it so that matching
// works regardless of the local listen address.
func NewServer(addr, publicOrigin string, visitor Visitor) *Server {
	return &Server{
		addr:         addr,
		publicOrigin: strings.TrimSuffix(publicOrigin, "/"),
		visitor:      visitor,
	}
}

// Run listens until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/", s.handleCallback)

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}

	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("callback server listening on %s", listener.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown callback server: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("callback server: %w", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// handleCallback forwards any request as a visit on the public origin and
// tells the user they can close the tab. Whether the URL actually matches a
// configured callback is the exchange flow's decision, not the server's.
func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	observed := s.publicOrigin + r.URL.RequestURI()
	if err := s.visitor.Visit(observed); err != nil {
		logger.Warn("callback visit %s: %v", r.URL.Path, err)
		http.Error(w, "invalid callback URL", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, callbackPage)
}

//nolint:misspell // CSS properties use American spelling
const callbackPage = `<!DOCTYPE html>
<html>
<head>
    <title>lumenctl - Authorization</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            margin: 0;
            background: #FAFAFA;
        }
        .container {
            text-align: center;
            background: white;
            padding: 48px 64px;
            border-radius: 16px;
            border: 1px solid #C7C8CC;
            box-shadow: 0 4px 24px rgba(0,0,0,0.08);
        }
        h1 {
            color: #333F50;
            margin: 0 0 8px 0;
            font-size: 24px;
            font-weight: 600;
        }
        p {
            color: #7B8088;
            margin: 0;
            font-size: 16px;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Authorization received</h1>
        <p>You can close this tab and return to the console.</p>
    </div>
</body>
</html>
`
