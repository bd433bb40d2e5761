package destination

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/gaborage/go-beams/event"
)

const (
	defaultBatchSize   = 100
	defaultMinInterval = 10 * time.Second
	defaultHTTPTimeout = 10 * time.Second

	// maxBuffered caps the retry buffer so an unreachable endpoint cannot
	// grow memory without bound.
	maxBuffered = 10 * defaultBatchSize
)

// HTTP ships rendered lines to an ingestion endpoint in JSON batches. Lines
// buffer until the batch threshold is reached; a rate limiter keeps sends at
// most one per minimum interval, except for explicit flushes. Failed batches
// stay buffered for the next attempt. Marked async by default.
type HTTP struct {
	*Core
	client    *http.Client
	url       string
	batchSize int
	limiter   *rate.Limiter

	// Guarded by the core write mutex.
	entries []string
	lastErr error
}

// NewHTTP returns a batch shipper posting to url.
func NewHTTP(url string) *HTTP {
	d := &HTTP{
		Core:      NewCore(),
		client:    &http.Client{Timeout: defaultHTTPTimeout},
		url:       url,
		batchSize: defaultBatchSize,
		limiter:   rate.NewLimiter(rate.Every(defaultMinInterval), 1),
	}
	d.SetAsync(true)
	return d
}

// SetBatchSize changes the number of buffered lines that triggers a send.
func (d *HTTP) SetBatchSize(n int) {
	if n <= 0 {
		return
	}
	d.writeMu.Lock()
	defer d.writeMu.Unlock()
	d.batchSize = n
}

// SetMinInterval changes the minimum spacing between threshold-triggered sends.
func (d *HTTP) SetMinInterval(interval time.Duration) {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()
	d.limiter = rate.NewLimiter(rate.Every(interval), 1)
}

// Log renders the event and buffers it, sending when the batch is full and
// the rate limiter permits.
func (d *HTTP) Log(e event.Event) {
	line, ok := d.Process(e)
	if !ok {
		return
	}

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	d.entries = append(d.entries, line)
	if len(d.entries) > maxBuffered {
		d.entries = d.entries[len(d.entries)-maxBuffered:]
	}

	if len(d.entries) >= d.batchSize && d.limiter.Allow() {
		d.sendLocked()
	}
}

// Flush sends any buffered lines immediately, bypassing the rate limiter,
// and reports the last delivery error.
func (d *HTTP) Flush() error {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	if len(d.entries) > 0 {
		d.sendLocked()
	}

	err := d.lastErr
	d.lastErr = nil
	return err
}

// sendLocked posts the buffered batch. Callers hold writeMu. On success the
// buffer is cleared; on failure it is kept for the next attempt.
func (d *HTTP) sendLocked() {
	payload, err := json.Marshal(struct {
		Entries []string `json:"entries"`
	}{Entries: d.entries})
	if err != nil {
		d.lastErr = fmt.Errorf("failed to encode log batch: %w", err)
		return
	}

	resp, err := d.client.Post(d.url, "application/json", bytes.NewReader(payload))
	if err != nil {
		d.lastErr = fmt.Errorf("failed to ship log batch: %w", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		d.lastErr = fmt.Errorf("log endpoint returned status %d", resp.StatusCode)
		return
	}

	d.entries = nil
}
