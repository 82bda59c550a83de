package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ictam/agmsite/internal/logger"
)

// Version is reported to clients during initialisation.
const Version = "0.2.0"

const instructions = `Tools and resources for the ICTAM AGM conference site.
Use "search" to find speakers, sponsors, sessions and links by keyword.
Use "programme" for the schedule. Speaker and sponsor profiles are
available as agm:// resources.`

// shutdownTimeout bounds graceful shutdown of the HTTP transport.
const shutdownTimeout = 5 * time.Second

// Server exposes the site's search, directory and programme over MCP.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer builds the MCP server. Tools and resources for optional ports
// are only registered when the port is set.
func NewServer(ports *Ports) (*Server, error) {
	if ports == nil {
		return nil, ErrMissingSearchService
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(
			&mcp.Implementation{Name: "agmsite", Version: Version},
			&mcp.ServerOptions{Instructions: instructions},
		),
	}
	s.registerTools()
	s.registerResources()
	return s, nil
}

// Connect serves a single session over transport. Run and RunHTTP are
// built on it; tests pair it with in-memory transports.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, transport, nil)
}

// Run serves JSON-RPC over stdio until ctx is cancelled or stdin closes.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("MCP server ready on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves the streamable HTTP transport on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("MCP shutdown: %v", err)
		}
	}()

	logger.Info("MCP server listening on %s", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
