package mailer

import (
	"log"
	"math"
	"strings"
	"time"
)

// Recipient is one entry in a bulk send, with per-recipient template data.
type Recipient struct {
	Email string            `json:"email" validate:"required,email"`
	Data  map[string]string `json:"data,omitempty"`
}

// BulkOptions controls batching, pacing and retries for a bulk send.
type BulkOptions struct {
	BatchSize           int           `json:"batchSize"`
	DelayBetweenEmails  time.Duration `json:"delayBetweenEmails"`
	DelayBetweenBatches time.Duration `json:"delayBetweenBatches"`
	MaxRetries          int           `json:"maxRetries"`
}

// DefaultBulkOptions matches the pacing the email loop testing page uses.
func DefaultBulkOptions() BulkOptions {
	return BulkOptions{
		BatchSize:           10,
		DelayBetweenEmails:  time.Second,
		DelayBetweenBatches: 5 * time.Second,
		MaxRetries:          2,
	}
}

// SendResult records the outcome for a single recipient.
type SendResult struct {
	Email   string    `json:"email"`
	Success bool      `json:"success"`
	SentAt  time.Time `json:"sentAt,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// Summary aggregates a whole bulk run.
type Summary struct {
	Total       int          `json:"total"`
	Sent        int          `json:"sent"`
	Failed      int          `json:"failed"`
	SuccessRate int          `json:"successRate"`
	Results     []SendResult `json:"results"`
}

// BulkSender sends a templated email to a recipient list in fixed-size
// batches, one message at a time. It is deliberately sequential and
// in-memory: progress is lost on restart and there is no dead-letter store.
type BulkSender struct {
	// SendFunc performs one delivery. Injected so tests can fake the provider.
	SendFunc func(to, subject, body string) error
}

func NewBulkSender(n *Notifier) *BulkSender {
	return &BulkSender{SendFunc: n.Send}
}

// RenderTemplate substitutes {{placeholder}} tokens with per-recipient data.
// Unknown tokens are left in place.
func RenderTemplate(template string, data map[string]string) string {
	result := template
	for k, v := range data {
		result = strings.ReplaceAll(result, "{{"+k+"}}", v)
	}
	return result
}

// Partition splits recipients into fixed-size batches, the last one ragged.
func Partition(recipients []Recipient, batchSize int) [][]Recipient {
	if batchSize < 1 {
		batchSize = 1
	}
	var batches [][]Recipient
	for start := 0; start < len(recipients); start += batchSize {
		end := start + batchSize
		if end > len(recipients) {
			end = len(recipients)
		}
		batches = append(batches, recipients[start:end])
	}
	return batches
}

// SendBulk runs the batch loop and returns the aggregated summary.
func (s *BulkSender) SendBulk(recipients []Recipient, subject, template string, opts BulkOptions) Summary {
	summary := Summary{
		Total:   len(recipients),
		Results: make([]SendResult, 0, len(recipients)),
	}

	batches := Partition(recipients, opts.BatchSize)
	for i, batch := range batches {
		for j, r := range batch {
			body := RenderTemplate(template, r.Data)
			result := s.sendWithRetry(r.Email, subject, body, opts.MaxRetries)
			if result.Success {
				summary.Sent++
			} else {
				summary.Failed++
			}
			summary.Results = append(summary.Results, result)

			// Pace sends within the batch; no delay after the last one
			if j < len(batch)-1 && opts.DelayBetweenEmails > 0 {
				time.Sleep(opts.DelayBetweenEmails)
			}
		}
		if i < len(batches)-1 && opts.DelayBetweenBatches > 0 {
			time.Sleep(opts.DelayBetweenBatches)
		}
	}

	if summary.Total > 0 {
		summary.SuccessRate = int(math.Round(float64(summary.Sent) / float64(summary.Total) * 100))
	}
	return summary
}

func (s *BulkSender) sendWithRetry(to, subject, body string, maxRetries int) SendResult {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := s.SendFunc(to, subject, body); err != nil {
			lastErr = err
			continue
		}
		return SendResult{Email: to, Success: true, SentAt: time.Now()}
	}

	log.Printf("Bulk send to %s failed after %d attempts: %v", to, maxRetries+1, lastErr)
	return SendResult{Email: to, Success: false, Error: lastErr.Error()}
}
