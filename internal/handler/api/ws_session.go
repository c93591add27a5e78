package api

import (
	"errors"
	"net/http"
	"sync"
	"time"

	models "github.com/PaulReadCFA/impliedgrowth/internal/domain/models"
	"github.com/PaulReadCFA/impliedgrowth/internal/service/debounce"
	"github.com/PaulReadCFA/impliedgrowth/internal/service/ratelimit"
	"github.com/PaulReadCFA/impliedgrowth/internal/store"
	"github.com/PaulReadCFA/impliedgrowth/internal/usecase"
	xhttp "github.com/PaulReadCFA/impliedgrowth/pkg/http"
	xlogger "github.com/PaulReadCFA/impliedgrowth/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// WSSession serves the interactive calculation channel. Clients stream raw
// input changes as they type; the session coalesces them through a debounce
// window, runs the calculator once per quiet period, and pushes every fresh
// snapshot published to the store back over the socket.
type WSSession struct {
	logger       *xlogger.Logger
	calc         *usecase.GrowthCalculator
	store        *store.Store
	limiter      *ratelimit.Limiter
	window       time.Duration
	maxMsgPerSec float64
	writeTimeout time.Duration
	upgrader     websocket.Upgrader
}

func NewWSSession(logger *xlogger.Logger, calc *usecase.GrowthCalculator, st *store.Store, window time.Duration, maxMsgPerSec float64, writeTimeout time.Duration) *WSSession {
	return &WSSession{
		logger:       logger,
		calc:         calc,
		store:        st,
		limiter:      ratelimit.New(),
		window:       window,
		maxMsgPerSec: maxMsgPerSec,
		writeTimeout: writeTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

type wsFrame struct {
	Type string      `json:"type"` // metrics or error
	Data interface{} `json:"data"`
}

// outbound serializes frame delivery to one connection. Slow consumers drop
// intermediate snapshots rather than blocking the publisher.
type outbound struct {
	mu     sync.Mutex
	ch     chan wsFrame
	closed bool
}

func newOutbound() *outbound { return &outbound{ch: make(chan wsFrame, 16)} }

func (o *outbound) send(f wsFrame) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	select {
	case o.ch <- f:
	default:
	}
}

func (o *outbound) close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.closed {
		o.closed = true
		close(o.ch)
	}
}

// Serve upgrades the request and runs the session until the client leaves.
func (s *WSSession) Serve(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	key := conn.RemoteAddr().String()
	defer s.limiter.Forget(key)

	out := newOutbound()
	subID := s.store.Subscribe(func(m *models.GrowthMetrics) {
		out.send(wsFrame{Type: "metrics", Data: m})
	})
	defer func() {
		s.store.Unsubscribe(subID)
		out.close()
	}()

	deb := debounce.New(s.window)
	defer deb.Stop()

	// writer loop
	done := make(chan struct{})
	go func() {
		defer close(done)
		for f := range out.ch {
			_ = conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
			if err := conn.WriteJSON(f); err != nil {
				return
			}
		}
	}()

	s.logger.Info("calc session opened", xlogger.String("remote", key))

	ctx := c.Request().Context()
	for {
		req := &models.GrowthRequest{}
		if err := conn.ReadJSON(req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("calc session read ended", xlogger.Error(err))
			}
			break
		}

		if !s.limiter.Allow(key, s.maxMsgPerSec, s.maxMsgPerSec) {
			continue // shed excess keystrokes, a recalculation is pending anyway
		}

		if verr := xhttp.ValidateStruct(ctx, req); verr != nil {
			out.send(wsFrame{Type: "error", Data: verr})
			continue
		}
		if s.calc.Variant() == models.VariantDirectD1 && req.ExpectedDividend == 0 {
			out.send(wsFrame{Type: "error", Data: []xhttp.ValidationError{{
				Code:    "ERR_REQUIRED",
				Field:   "expected_dividend",
				Message: "expected_dividend is required for the direct-D1 model",
			}}})
			continue
		}

		in := req.Inputs()
		deb.Trigger(func() {
			// success is delivered through the store subscription
			if _, err := s.calc.Calculate(ctx, in); err != nil {
				code := "ERR_COMPUTATION"
				if errors.Is(err, usecase.ErrFinancialLogic) {
					code = "ERR_FINANCIAL_LOGIC"
				}
				out.send(wsFrame{Type: "error", Data: []xhttp.ValidationError{{
					Code:    code,
					Message: err.Error(),
				}}})
			}
		})
	}

	out.close()
	<-done
	s.logger.Info("calc session closed", xlogger.String("remote", key))
	return nil
}
