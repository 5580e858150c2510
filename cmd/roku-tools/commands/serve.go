package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/roku-tools/internal/assistant"
	"github.com/ironsheep/roku-tools/internal/ocr"
	"github.com/ironsheep/roku-tools/internal/server"
)

var (
	httpAddr string
	stdio    bool
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tools over MCP",
	Long: `Serve the tools over MCP (JSON-RPC 2.0, one request per line) on stdin/stdout.

With --http the same tools are also served over HTTP:
  GET  /healthz          liveness plus OCR engine status
  GET  /v1/tools         tool definitions
  POST /v1/tools/{name}  call a tool with a JSON argument object
  GET  /ws               MCP over a websocket

Examples:
  roku-tools serve
  roku-tools serve --http :8080
  roku-tools serve --http 127.0.0.1:8080 --stdio=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := httpAddr
		if addr == "" {
			addr = cfg.HTTPAddr
		}
		if !stdio && addr == "" {
			return errors.New("nothing to serve: --stdio=false needs --http")
		}

		engine := ocr.New(ocr.Options{Command: cfg.TesseractCmd, TessdataPrefix: cfg.TessdataPrefix})
		reg, err := newRegistry(assistant.Deps{OCR: engine})
		if err != nil {
			return err
		}
		srv := server.New(reg, logger.With("component", "server"))
		srv.Version = version

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		httpErr := make(chan error, 1)
		if addr != "" {
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("http listen: %w", err)
			}
			httpSrv := &http.Server{
				Handler:           server.NewHTTPHandler(srv, engine),
				ReadHeaderTimeout: 10 * time.Second,
			}
			logger.Info("http listening", "addr", ln.Addr().String())
			onListen(ln.Addr())
			go func() {
				if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					httpErr <- fmt.Errorf("http server: %w", err)
				}
			}()
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				_ = httpSrv.Shutdown(shutdownCtx)
			}()
		}

		// A nil channel never fires, so HTTP-only serving waits on ctx alone.
		var stdioDone chan error
		if stdio {
			stdioDone = make(chan error, 1)
			logger.Info("mcp server started", "version", version, "tools", len(reg.List()))
			go func() { stdioDone <- srv.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout()) }()
		}

		for {
			select {
			case err := <-httpErr:
				return err
			case err := <-stdioDone:
				if err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
				if addr == "" || ctx.Err() != nil {
					return nil
				}
				logger.Info("stdio closed, still serving http", "addr", addr)
				stdioDone = nil
			case <-ctx.Done():
				logger.Info("shutting down")
				return nil
			}
		}
	},
}

// onListen is called with the bound HTTP address.
var onListen = func(net.Addr) {}

func init() {
	serveCmd.Flags().StringVar(&httpAddr, "http", "", "also listen for HTTP on this address (overrides ROKU_HTTP_ADDR)")
	serveCmd.Flags().BoolVar(&stdio, "stdio", true, "serve MCP on stdin/stdout")
}
