package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Dulitha99/Research-Website/internal/contact"
	"github.com/Dulitha99/Research-Website/internal/metrics"
)

type ContactRequest struct {
	Name    string `json:"name" form:"name" binding:"required,max=200"`
	Email   string `json:"email" form:"email" binding:"required,email,max=320"`
	Message string `json:"message" form:"message" binding:"required,max=5000"`
}

type ContactResponse struct {
	ID     string         `json:"id"`
	Status contact.Status `json:"status"`
}

type ContactOptions struct {
	Sender     contact.Sender
	Deduper    contact.Deduper
	ResetAfter time.Duration
	PerMinute  int // submissions allowed per client IP; 0 disables limiting
	Logger     *zap.Logger
}

// ContactHandler accepts contact form posts. Each request drives its own
// contact.Form through submitting to success or error.
type ContactHandler struct {
	opts     ContactOptions
	log      *zap.Logger
	limiters *ipLimiters
}

func NewContactHandler(opts ContactOptions) *ContactHandler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Sender == nil {
		opts.Sender = contact.NewSimulatedSender(contact.DefaultSendDelay, opts.Logger)
	}
	if opts.Deduper == nil {
		opts.Deduper = contact.NewMemoryDeduper(10 * time.Minute)
	}
	h := &ContactHandler{opts: opts, log: opts.Logger}
	if opts.PerMinute > 0 {
		h.limiters = newIPLimiters(rate.Every(time.Minute/time.Duration(opts.PerMinute)), opts.PerMinute)
	}
	return h
}

func (h *ContactHandler) Submit(c *gin.Context) {
	if h.limiters != nil && !h.limiters.allow(c.ClientIP()) {
		metrics.RecordContact("rate_limited")
		writeError(c, codeRateLimited, "too many submissions, try again later")
		return
	}

	var req ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		metrics.RecordContact("invalid")
		writeError(c, codeInvalidInput, "name, a valid email and message are required")
		return
	}

	key := contact.Fingerprint(req.Email, req.Message)
	if !h.opts.Deduper.AcquireOnce(c.Request.Context(), key) {
		metrics.RecordContact("duplicate")
		writeError(c, codeDuplicate, "this message was already sent")
		return
	}

	var formOpts []contact.Option
	if h.opts.ResetAfter > 0 {
		formOpts = append(formOpts, contact.WithResetAfter(h.opts.ResetAfter))
	}
	form := contact.NewForm(h.opts.Sender, formOpts...)
	defer form.Close()
	form.Set(contact.Fields{Name: req.Name, Email: req.Email, Message: req.Message})

	msg, err := form.Submit(c.Request.Context())
	if err != nil {
		// Nothing was delivered, so the same message may be sent again.
		h.opts.Deduper.Release(context.WithoutCancel(c.Request.Context()), key)
	}
	switch {
	case err == nil:
	case errors.Is(err, contact.ErrIncomplete):
		metrics.RecordContact("invalid")
		writeError(c, codeInvalidInput, err.Error())
		return
	default:
		metrics.RecordContact("failed")
		h.log.Error("Contact submission failed", zap.Error(err))
		writeError(c, codeSendFailed, "message could not be sent")
		return
	}

	metrics.RecordContact("accepted")
	c.JSON(http.StatusOK, ContactResponse{ID: msg.ID, Status: contact.StatusSuccess})
}

type ipLimiters struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	clients map[string]*clientLimiter
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const limiterIdle = 10 * time.Minute

func newIPLimiters(limit rate.Limit, burst int) *ipLimiters {
	return &ipLimiters{limit: limit, burst: burst, clients: make(map[string]*clientLimiter)}
}

func (l *ipLimiters) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for key, cl := range l.clients {
		if now.Sub(cl.lastSeen) > limiterIdle {
			delete(l.clients, key)
		}
	}

	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}
