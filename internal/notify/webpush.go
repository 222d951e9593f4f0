package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/sirupsen/logrus"

	"roster/internal/model"
)

// ErrGone is returned when the push service reports the endpoint no longer exists.
var ErrGone = errors.New("push endpoint gone")

// defaultTTL is how long, in seconds, the push service keeps an undelivered message.
const defaultTTL = 24 * 60 * 60

// Sender delivers one payload to one subscription.
type Sender interface {
	Send(ctx context.Context, sub model.Subscription, payload []byte) error
}

// WebPushSender sends VAPID-signed web push messages.
type WebPushSender struct {
	publicKey  string
	privateKey string
	subject    string
	client     webpush.HTTPClient
}

// NewWebPushSender builds a sender from the VAPID key pair and contact subject.
func NewWebPushSender(publicKey, privateKey, subject string) *WebPushSender {
	return &WebPushSender{
		publicKey:  publicKey,
		privateKey: privateKey,
		subject:    subject,
		client:     http.DefaultClient,
	}
}

// Send implements Sender.
func (s *WebPushSender) Send(ctx context.Context, sub model.Subscription, payload []byte) error {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			Auth:   sub.Auth,
			P256dh: sub.P256dh,
		},
	}, &webpush.Options{
		HTTPClient:      s.client,
		Subscriber:      s.subject,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             defaultTTL,
	})
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusGone:
		return fmt.Errorf("%w: status %d", ErrGone, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("push service responded with status %d", resp.StatusCode)
	}
	return nil
}

// LogSender only logs. Used when no VAPID keys are configured.
type LogSender struct {
	Log logrus.FieldLogger
}

// Send implements Sender.
func (s LogSender) Send(_ context.Context, sub model.Subscription, payload []byte) error {
	s.Log.WithFields(logrus.Fields{
		"subscription_id": sub.ID,
		"user_id":         sub.UserID,
		"bytes":           len(payload),
	}).Info("push disabled, message not sent")
	return nil
}
