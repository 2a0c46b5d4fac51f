package order

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/lahuerta/storefront-api/models"
)

// Outcome is the result of one submission. Both values are handled the same
// downstream: the order counts as placed either way.
type Outcome string

const (
	// OutcomeSent means the endpoint acknowledged the write.
	OutcomeSent Outcome = "sent"
	// OutcomeUnconfirmed means the write could not be confirmed: network
	// error, timeout, or an unreadable response.
	OutcomeUnconfirmed Outcome = "unconfirmed"
)

// ErrSubmissionInProgress rejects a Submit issued while a previous one has
// not finished its cleanup.
var ErrSubmissionInProgress = errors.New("an order submission is already in progress")

// CartClearer is the one cart operation the submitter needs.
type CartClearer interface {
	Clear()
}

// Submitter delivers order payloads to the remote endpoint best-effort: one
// POST, no retry, and the cart is cleared exactly once per accepted Submit
// regardless of what the network did.
type Submitter struct {
	URL    string
	Client *http.Client
	Cart   CartClearer
	// Notify, when set, receives every submitted order after cleanup.
	Notify func(models.Order)

	inFlight atomic.Bool
}

func NewSubmitter(url string, cart CartClearer) *Submitter {
	return &Submitter{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
		Cart:   cart,
	}
}

// Submit sends the payload and clears the cart. A second Submit while one is
// running returns ErrSubmissionInProgress and changes nothing.
func (s *Submitter) Submit(o models.Order) (Outcome, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return "", ErrSubmissionInProgress
	}
	defer s.inFlight.Store(false)

	outcome := s.send(o)

	// The cart empties whatever the transport outcome was.
	s.Cart.Clear()

	if s.Notify != nil {
		s.Notify(o)
	}
	return outcome, nil
}

func (s *Submitter) send(o models.Order) Outcome {
	body, err := json.Marshal(o)
	if err != nil {
		log.Printf("❌ order %s: failed to serialize payload: %v", o.OrderRef, err)
		return OutcomeUnconfirmed
	}

	// No Content-Type header: the sheet endpoint cannot answer a CORS
	// preflight, so the request has to stay a simple one.
	req, err := http.NewRequest(http.MethodPost, s.URL, bytes.NewBuffer(body))
	if err != nil {
		return OutcomeUnconfirmed
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		log.Printf("⚠️ order %s: submission unconfirmed: %v", o.OrderRef, err)
		return OutcomeUnconfirmed
	}
	defer resp.Body.Close()

	// The response body carries no meaning for this transport; drain it so
	// the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	log.Printf("✅ order %s submitted (%d items, total %.2f)", o.OrderRef, len(o.Items), o.Total)
	return OutcomeSent
}
