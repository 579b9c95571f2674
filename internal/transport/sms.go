// Package transport delivers rendered reminder messages. The engine hands
// over (phone number, body) pairs; everything about how they reach the
// handset lives here.
package transport

import "context"

// Transport sends one message body to one phone number. Implementations are
// expected to handle bodies longer than a single SMS segment (multipart
// delivery) and to report delivered/failed per attempt via the error return.
type Transport interface {
	Send(ctx context.Context, to, body string) error
}
