package httptransport

import (
	"net/http"
	"time"
)

// Timeouts bounds connection lifecycles on the listener.
type Timeouts struct {
	Read  time.Duration
	Write time.Duration
	Idle  time.Duration
}

// NewServer creates *http.Server with the provided handler and timeouts.
func NewServer(addr string, handler http.Handler, t Timeouts) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  t.Read,
		WriteTimeout: t.Write,
		IdleTimeout:  t.Idle,
	}
}
