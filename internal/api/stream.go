package api

import (
	"context"
	"log"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"

	"paypage_ai_server/internal/ai"
	"paypage_ai_server/internal/types"
)

const (
	StreamProgress = "progress"
	StreamComplete = "complete"
	StreamError    = "error"

	streamStartTimeout = 10 * time.Second
	streamReadLimit    = 64 << 10
)

// StreamFrame is one message sent to the client during a simulated generation.
type StreamFrame struct {
	Type     string               `json:"type"`
	Progress *ai.Progress         `json:"progress,omitempty"`
	Page     *types.GeneratedPage `json:"page,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// StreamGeneration upgrades to a websocket, reads {businessData}, streams
// progress frames and finishes with the page. Closing the socket cancels
// the run; no page is produced after that.
func (h *APIHandler) StreamGeneration(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // any origin, same as the CORS policy
	})
	if err != nil {
		log.Printf("ERROR: Websocket accept failed: %v", err)
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(streamReadLimit)

	var req GeneratePageRequest
	readCtx, cancel := context.WithTimeout(c.Request.Context(), streamStartTimeout)
	err = wsjson.Read(readCtx, conn, &req)
	cancel()
	if err != nil || req.BusinessData == nil {
		_ = wsjson.Write(c.Request.Context(), conn, StreamFrame{Type: StreamError, Error: "expected {\"businessData\": {...}}"})
		conn.Close(websocket.StatusPolicyViolation, "missing business data")
		return
	}

	// From here on the client only listens; a close or any further message cancels ctx.
	ctx := conn.CloseRead(c.Request.Context())

	page, err := h.simulation.Run(ctx, *req.BusinessData, func(p ai.Progress) {
		if werr := wsjson.Write(ctx, conn, StreamFrame{Type: StreamProgress, Progress: &p}); werr != nil {
			log.Printf("WARN: Dropping progress frame: %v", werr)
		}
	})
	if err != nil {
		if ctx.Err() != nil {
			log.Printf("Simulated generation for %q cancelled: %v", req.BusinessData.BusinessName, err)
			return
		}
		_ = wsjson.Write(ctx, conn, StreamFrame{Type: StreamError, Error: err.Error()})
		conn.Close(websocket.StatusInternalError, "generation failed")
		return
	}

	if err := wsjson.Write(ctx, conn, StreamFrame{Type: StreamComplete, Page: page}); err != nil {
		log.Printf("WARN: Failed to send generated page: %v", err)
		return
	}
	conn.Close(websocket.StatusNormalClosure, "done")
}
