// Command hanoi serves the Towers of Hanoi playback engine.
//
// It supports four commands:
//  1. "server" (default) runs the HTTP server exposing REST API, WebSocket, and an /mcp HTTP endpoint
//  2. "stdio-mcp" runs an MCP stdio server and spins up an internal HTTP API if none is available
//  3. "solve N" prints the optimal move list for N disks
//  4. "validate [dir]" checks every preset file in a directory
//
// Settings come from the environment (and a .env file); flags override them.
// An optional ngrok tunnel exposes the server for external access during development.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"

	"github.com/wricardo/mcp-training/hanoi/api"
	"github.com/wricardo/mcp-training/hanoi/game/config"
	"github.com/wricardo/mcp-training/hanoi/game/engine"
	"github.com/wricardo/mcp-training/hanoi/game/service"
	"github.com/wricardo/mcp-training/hanoi/game/session"
	"github.com/wricardo/mcp-training/hanoi/transport/mcp"
	"github.com/wricardo/mcp-training/hanoi/transport/websocket"
	"github.com/wricardo/mcp-training/hanoi/validate"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Towers of Hanoi Server"
)

// main loads settings, builds the command tree, and runs the selected command.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(settings).Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp builds the command tree. Flag defaults come from settings.
func newApp(settings *config.Settings) *cli.Command {
	serverCmd := &cli.Command{
		Name:    "server",
		Aliases: []string{"http"},
		Usage:   "Run HTTP server with API, WebSocket, and MCP endpoint",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runHTTPServer(ctx, settingsFrom(cmd, settings))
		},
	}

	return &cli.Command{
		Name:    "hanoi",
		Usage:   AppName,
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host", Value: settings.Host, Usage: "HTTP server host"},
			&cli.IntFlag{Name: "port", Value: settings.Port, Usage: "HTTP server port"},
			&cli.StringFlag{Name: "config-dir", Value: settings.ConfigDir, Usage: "Directory containing puzzle presets"},
			&cli.DurationFlag{Name: "autoplay-interval", Value: settings.AutoplayInterval, Usage: "Default delay between autoplay moves"},
			&cli.DurationFlag{Name: "session-ttl", Value: settings.SessionTTL, Usage: "Remove sessions idle longer than this"},
			&cli.BoolFlag{Name: "debug", Value: settings.Debug, Usage: "Enable debug logging"},
			&cli.BoolFlag{Name: "ngrok", Value: settings.NgrokEnabled, Usage: "Enable ngrok tunnel"},
			&cli.StringFlag{Name: "ngrok-auth", Value: settings.NgrokAuth, Usage: "Ngrok auth token (or use NGROK_AUTHTOKEN env var)"},
			&cli.StringFlag{Name: "ngrok-domain", Value: settings.NgrokDomain, Usage: "Custom ngrok domain (optional)"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			} else {
				log.SetFlags(log.LstdFlags)
			}
			return ctx, nil
		},
		// Running without a command starts the HTTP server
		Action: serverCmd.Action,
		Commands: []*cli.Command{
			serverCmd,
			{
				Name:    "stdio-mcp",
				Aliases: []string{"mcp", "mcp-stdio"},
				Usage:   "Run MCP stdio server with internal HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runStdioMCPWithInternalServer(ctx, settingsFrom(cmd, settings))
				},
			},
			{
				Name:      "solve",
				Usage:     "Print the optimal move list",
				ArgsUsage: "N",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "count", Usage: "Only print the number of moves"},
				},
				Action: runSolve,
			},
			{
				Name:      "validate",
				Usage:     "Validate preset files",
				ArgsUsage: "[dir]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					dir := cmd.Args().First()
					if dir == "" {
						dir = cmd.String("config-dir")
					}
					return runValidate(cmd, dir)
				},
			},
		},
	}
}

// settingsFrom copies settings and applies the parsed flags
func settingsFrom(cmd *cli.Command, base *config.Settings) *config.Settings {
	s := *base
	s.Host = cmd.String("host")
	s.Port = cmd.Int("port")
	s.ConfigDir = cmd.String("config-dir")
	s.AutoplayInterval = cmd.Duration("autoplay-interval")
	s.SessionTTL = cmd.Duration("session-ttl")
	s.Debug = cmd.Bool("debug")
	s.NgrokEnabled = cmd.Bool("ngrok")
	s.NgrokAuth = cmd.String("ngrok-auth")
	s.NgrokDomain = cmd.String("ngrok-domain")
	return &s
}

// runSolve prints one line per move: number, disk and transfer
func runSolve(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return cli.Exit("usage: hanoi solve N", 2)
	}
	n, err := strconv.Atoi(cmd.Args().First())
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid disk count %q", cmd.Args().First()), 2)
	}
	if err := engine.ValidateDiskCount(n); err != nil {
		return cli.Exit(err.Error(), 2)
	}

	w := bufio.NewWriter(cmd.Root().Writer)
	defer w.Flush()

	if cmd.Bool("count") {
		fmt.Fprintln(w, engine.MoveCount(n))
		return nil
	}

	eng, err := engine.New(n)
	if err != nil {
		return err
	}
	for i, m := range eng.Moves() {
		if _, err := eng.Advance(); err != nil {
			return err
		}
		disk := eng.Rods()[m.To][0]
		fmt.Fprintf(w, "%d. disk %d %s\n", i+1, disk, m)
	}
	return nil
}

// runValidate prints a report for every preset in dir
func runValidate(cmd *cli.Command, dir string) error {
	results, err := validate.Dir(dir)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if !validate.Report(cmd.Root().Writer, results) {
		return cli.Exit("", 1)
	}
	return nil
}

// runHTTPServer starts the HTTP server with REST API, WebSocket hub, and an /mcp endpoint.
// If ngrok is enabled it also provisions a public tunnel. It returns when ctx is cancelled.
func runHTTPServer(ctx context.Context, settings *config.Settings) error {
	log.Printf("Starting %s v%s (mode: server)", AppName, Version)

	// Create WebSocket hub
	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Close()

	gameService, err := initializeServices(ctx, settings, service.WithNotifier(hub))
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	defer gameService.Close()

	apiServer := api.NewServer(gameService, hub)

	addr := settings.Addr()

	// The MCP endpoint proxies back to this server's REST API
	mcpClient := mcp.NewClient(fmt.Sprintf("http://%s", addr))
	apiServer.Mount("/mcp", server.NewStreamableHTTPServer(mcpClient.GetMCPServer()))

	httpServer := &http.Server{
		Addr:        addr,
		Handler:     apiServer,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	var wg sync.WaitGroup
	serveErr := make(chan error, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Printf("HTTP server listening on %s", addr)
		log.Printf("REST API: http://%s/api", addr)
		log.Printf("WebSocket: ws://%s/ws?session=<session_id>", addr)
		log.Printf("MCP endpoint: http://%s/mcp", addr)

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	if settings.NgrokEnabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runNgrokTunnel(ctx, settings, apiServer)
		}()
	}

	select {
	case <-ctx.Done():
		log.Printf("Shutting down...")
	case err := <-serveErr:
		return fmt.Errorf("HTTP server failed: %w", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("Server stopped")
	return nil
}

// runNgrokTunnel serves handler through an ngrok endpoint until ctx is cancelled
func runNgrokTunnel(ctx context.Context, settings *config.Settings, handler http.Handler) {
	authToken := settings.NgrokAuth
	if authToken == "" {
		authToken = os.Getenv("NGROK_AUTH_TOKEN")
	}
	if authToken == "" {
		log.Println("WARNING: Ngrok enabled but no auth token provided (use --ngrok-auth, NGROK_AUTHTOKEN, or NGROK_AUTH_TOKEN env var)")
		return
	}

	log.Println("Starting ngrok tunnel...")

	var tunnel ngrokConfig.Tunnel
	if settings.NgrokDomain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(settings.NgrokDomain))
		log.Printf("Using custom ngrok domain: %s", settings.NgrokDomain)
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	tun, err := ngrok.Listen(ctx, tunnel, ngrok.WithAuthtoken(authToken))
	if err != nil {
		log.Printf("Failed to start ngrok tunnel: %v", err)
		return
	}

	ngrokURL := tun.URL()
	log.Printf("🚀 Ngrok tunnel established: %s", ngrokURL)
	log.Printf("  REST API (ngrok): %s/api", ngrokURL)
	log.Printf("  WebSocket (ngrok): %s/ws?session=<session_id>", ngrokURL)
	log.Printf("  MCP endpoint (ngrok): %s/mcp", ngrokURL)

	go func() {
		<-ctx.Done()
		if err := tun.Close(); err != nil {
			log.Printf("Failed to close ngrok tunnel: %v", err)
		}
	}()

	if err := http.Serve(tun, handler); err != nil && ctx.Err() == nil {
		log.Printf("Ngrok server error: %v", err)
	}
	log.Println("Ngrok tunnel closed")
}

// initializeServices wires the session and config managers into the game service.
// It also starts a background routine that prunes idle sessions until ctx ends.
func initializeServices(ctx context.Context, settings *config.Settings, opts ...service.Option) (service.GameService, error) {
	configManager, err := config.NewManager(settings.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	sessionManager := session.NewManager()

	opts = append([]service.Option{service.WithAutoplayInterval(settings.AutoplayInterval)}, opts...)
	gameService := service.NewGameService(sessionManager, configManager, opts...)

	go sessionCleanupRoutine(ctx, sessionManager, settings.SessionTTL)

	return gameService, nil
}

// sessionCleanupRoutine periodically removes sessions that have not been accessed
// within ttl.
func sessionCleanupRoutine(ctx context.Context, manager *session.Manager, ttl time.Duration) {
	interval := time.Hour
	if ttl/2 < interval {
		interval = ttl / 2
	}
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := manager.CleanupExpiredSessions(ttl); removed > 0 {
				log.Printf("Cleaned up %d expired sessions", removed)
			}
		}
	}
}

// runStdioMCPWithInternalServer runs an MCP stdio server.
// It reuses an API already listening on the configured address; otherwise it
// starts an internal HTTP API on a random loopback port and targets that.
func runStdioMCPWithInternalServer(ctx context.Context, settings *config.Settings) error {
	log.Printf("Starting %s v%s (mode: stdio-mcp)", AppName, Version)

	externalURL := fmt.Sprintf("http://%s", settings.Addr())
	baseURL := externalURL

	log.Printf("Checking for external API server at %s...", externalURL)
	testClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := testClient.Get(externalURL + "/health")
	if err == nil && resp.StatusCode == http.StatusOK {
		resp.Body.Close()
		log.Printf("External API server found at %s, using it for MCP", externalURL)
	} else {
		if err == nil {
			resp.Body.Close()
		}
		log.Printf("No external API server found, starting internal HTTP server")

		gameService, err := initializeServices(ctx, settings)
		if err != nil {
			return fmt.Errorf("failed to initialize services: %w", err)
		}
		defer gameService.Close()

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("failed to get available port: %w", err)
		}
		internalAddr := listener.Addr().String()

		log.Printf("Starting internal HTTP server on %s for MCP stdio", internalAddr)

		hub := websocket.NewHub()
		go hub.Run()
		defer hub.Close()
		service.SetNotifier(gameService, hub)

		httpServer := &http.Server{Handler: api.NewServer(gameService, hub)}
		go func() {
			if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("Internal HTTP server error: %v", err)
			}
		}()
		defer httpServer.Close()

		baseURL = fmt.Sprintf("http://%s", internalAddr)
	}

	mcpClient := mcp.NewClient(baseURL)

	if baseURL == externalURL {
		log.Println("MCP stdio server ready (using external HTTP server)")
	} else {
		log.Println("MCP stdio server ready (using internal HTTP server)")
	}

	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}
