package main

import (
	_ "embed"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/kinetograph/kineto/engine"
	"github.com/kinetograph/kineto/fragment"
	"github.com/kinetograph/kineto/internal/ui"
	"github.com/kinetograph/kineto/merge"
)

//go:embed viewer.html
var viewerPage []byte

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsCommand is one interaction message from the viewer page.
type wsCommand struct {
	Action string  `json:"action"` // reheat | drag_start | drag_move | drag_end | hover | hover_edge | focus | clear | pan | zoom
	ID     string  `json:"id,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Factor float64 `json:"factor,omitempty"`
}

func serveCmd() *cobra.Command {
	var (
		addr     string
		settings string
		fps      int
	)

	cmd := &cobra.Command{
		Use:   "serve <fragment.yaml|json>",
		Short: "Serve a live force-directed viewer in the browser",
		Long: `Load a fragment and stream simulation frames over a websocket to an
embedded canvas page. Drag, hover and reheat flow back over the same socket.

  kineto serve graph.yaml
  kineto serve graph.yaml --addr :9090 --fps 60`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fragment.LoadFile(args[0])
			if err != nil {
				return err
			}
			var s engine.Settings
			if settings != "" {
				if s, err = loadSettings(settings); err != nil {
					return err
				}
			} else {
				s = engine.DefaultSettings()
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			ui.Banner("live viewer on " + addr)

			gin.SetMode(gin.ReleaseMode)
			r := gin.New()
			r.Use(gin.Recovery())

			r.GET("/", func(c *gin.Context) {
				c.Data(http.StatusOK, "text/html; charset=utf-8", viewerPage)
			})
			r.GET("/ws", func(c *gin.Context) {
				streamFrames(c, f, s, logger, fps)
			})

			return r.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8460", "Listen address")
	cmd.Flags().StringVarP(&settings, "settings", "s", "", "Settings file (.toml or .yaml)")
	cmd.Flags().IntVar(&fps, "fps", 30, "Frame rate of the stream")
	return cmd
}

// streamFrames owns one engine per websocket session: the single-threaded
// engine lives entirely inside this goroutine, commands are drained between
// ticks, and the connection closing tears the simulation down.
func streamFrames(c *gin.Context, f fragment.Fragment, s engine.Settings, logger *slog.Logger, fps int) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer ws.Close()

	e := engine.New(engine.WithSettings(s), engine.WithLogger(logger))
	if _, err := e.Load(f, merge.Replace); err != nil {
		logger.Error("fragment load failed", "error", err)
		return
	}

	// Reader goroutine feeds commands; the engine itself is only ever
	// touched from this frame loop.
	commands := make(chan wsCommand, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var cmd wsCommand
			if err := ws.ReadJSON(&cmd); err != nil {
				return
			}
			select {
			case commands <- cmd:
			case <-done:
				return
			}
		}
	}()

	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	logger.Info("viewer connected", "remote", ws.RemoteAddr().String())
	for {
		select {
		case <-done:
			logger.Info("viewer disconnected")
			return
		case cmd := <-commands:
			applyCommand(e, cmd)
		case <-ticker.C:
			frame := e.Tick()
			if err := ws.WriteJSON(frame); err != nil {
				logger.Info("viewer disconnected", "error", err)
				return
			}
		}
	}
}

// applyCommand routes one viewer message into the engine.
func applyCommand(e *engine.Engine, cmd wsCommand) {
	switch cmd.Action {
	case "reheat":
		_ = e.Reheat()
	case "drag_start":
		_ = e.DragStart(cmd.ID)
	case "drag_move":
		_ = e.DragMove(cmd.ID, cmd.X, cmd.Y)
	case "drag_end":
		_ = e.DragEnd(cmd.ID)
	case "hover":
		e.HoverNode(cmd.ID)
	case "hover_edge":
		e.HoverEdge(cmd.ID)
	case "focus":
		e.Focus(cmd.ID)
	case "clear":
		e.ClearHover()
		e.ClearFocus()
	case "pan":
		e.Pan(cmd.X, cmd.Y)
	case "zoom":
		e.Zoom(cmd.Factor, cmd.X, cmd.Y)
	}
}
