// Package statusapi gives a running peer an HTTP introspection surface:
// /healthz for liveness and /status for its current rank, round, and
// algorithm. It is ops visibility only — neither handler ever
// participates in or gates the computation itself. The router is a
// plain gin.Default() serving two JSON-returning GET routes.
package statusapi

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// Status is a snapshot of what a peer is doing right now.
type Status struct {
	Rank      uint32 `json:"rank"`
	Size      uint32 `json:"size"`
	Algorithm string `json:"algorithm"`
	Round     int    `json:"round"`
	Done      bool   `json:"done"`
}

// Reporter is the status source a peer updates as it progresses
// through a computation; the HTTP handlers only ever read from it.
type Reporter struct {
	mu     sync.RWMutex
	status Status
}

// NewReporter seeds a Reporter for rank within a cohort of the given
// size, about to run algo.
func NewReporter(rank, size uint32, algo string) *Reporter {
	return &Reporter{status: Status{Rank: rank, Size: size, Algorithm: algo}}
}

// SetRound records the round (gather/broadcast iteration or tournament
// stepSize) the peer is currently working on.
func (rep *Reporter) SetRound(round int) {
	rep.mu.Lock()
	defer rep.mu.Unlock()
	rep.status.Round = round
}

// SetDone marks the computation finished.
func (rep *Reporter) SetDone() {
	rep.mu.Lock()
	defer rep.mu.Unlock()
	rep.status.Done = true
}

func (rep *Reporter) snapshot() Status {
	rep.mu.RLock()
	defer rep.mu.RUnlock()
	return rep.status
}

// Healthz replies 200 once the peer's cohort listener is up; it takes
// no dependency on computation progress.
func (rep *Reporter) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// StatusHandler reports the peer's current Status as JSON.
func (rep *Reporter) StatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, rep.snapshot())
}

// Listen starts the status API on listenAddr. It blocks, so callers
// run it in its own goroutine. rank is folded into the log line so a
// multi-peer log stream stays attributable.
func Listen(listenAddr string, rep *Reporter) {
	router := gin.Default()
	router.GET("/healthz", rep.Healthz)
	router.GET("/status", rep.StatusHandler)
	log.Printf("statusapi: rank %d listening on %v", rep.snapshot().Rank, listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Printf("statusapi: rank %d: error while serving: %v", rep.snapshot().Rank, err)
	}
}
