// internal/app/status_service.go
package app

import (
	"context"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// FailurePrefix starts every failure notification.
const FailurePrefix = "Сбой в работе программы: "

// StatusFetcher returns the decoded homework_statuses body for changes since fromDate.
type StatusFetcher interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) (any, error)
}

// PollState is carried from one cycle to the next.
type PollState struct {
	Timestamp int64  // watermark: lower bound of the next query window
	LastError string // last failure notification sent, empty after a successful cycle
}

// Outcome is the result of evaluating one cycle.
// Either Err is set, or CurrentDate is valid and Message holds the
// status-change text (empty when nothing changed).
type Outcome struct {
	Message     string
	CurrentDate int64
	Err         error
}

// StatusService polls homework statuses and relays changes to one chat.
type StatusService struct {
	fetcher        StatusFetcher
	telegramClient domainTelegram.Client
	chatID         string
	logger         *logrus.Entry
}

func NewStatusService(fetcher StatusFetcher, tc domainTelegram.Client, chatID string, logger *logrus.Entry) *StatusService {
	return &StatusService{
		fetcher:        fetcher,
		telegramClient: tc,
		chatID:         chatID,
		logger:         logger,
	}
}

// RunCycle performs fetch, validation, parsing and notification once and
// updates state. It never returns an error: failures are reported to the chat.
// A cycle interrupted by ctx cancellation is dropped without notifying.
func (s *StatusService) RunCycle(ctx context.Context, state *PollState) {
	outcome := s.Evaluate(ctx, state.Timestamp)
	if ctx.Err() != nil {
		s.logger.WithError(ctx.Err()).Info("Cycle interrupted by shutdown, result discarded")
		return
	}
	s.Apply(state, outcome)
}

// Evaluate fetches statuses since fromDate and builds the notification text.
func (s *StatusService) Evaluate(ctx context.Context, fromDate int64) Outcome {
	body, err := s.fetcher.HomeworkStatuses(ctx, fromDate)
	if err != nil {
		return Outcome{Err: err}
	}

	resp, err := homework.CheckResponse(body)
	if err != nil {
		s.logger.WithError(err).Error("API response does not match the expected shape")
		return Outcome{Err: err}
	}

	latest, ok := resp.Latest()
	if !ok {
		s.logger.Debug("No new homework statuses in the response")
		return Outcome{CurrentDate: resp.CurrentDate}
	}

	message, err := homework.ParseStatus(latest)
	if err != nil {
		s.logger.WithError(err).Error("Failed to parse homework status")
		return Outcome{Err: err}
	}

	return Outcome{Message: message, CurrentDate: resp.CurrentDate}
}

// Apply sends whatever the outcome calls for and advances state.
// A failure message identical to the previous one is not sent again.
func (s *StatusService) Apply(state *PollState, outcome Outcome) {
	if outcome.Err != nil {
		message := FailurePrefix + outcome.Err.Error()
		if message == state.LastError {
			s.logger.WithField("error", outcome.Err).Debug("Same failure as last cycle, notification suppressed")
			return
		}
		state.LastError = message
		s.send(message)
		return
	}

	if outcome.Message != "" {
		s.send(outcome.Message)
	}
	state.Timestamp = outcome.CurrentDate
	state.LastError = ""
}

// send delivers text to the configured chat; errors are only logged.
func (s *StatusService) send(text string) {
	logCtx := s.logger.WithField("chat_id", s.chatID)
	if err := s.telegramClient.SendMessage(s.chatID, text, nil); err != nil {
		logCtx.WithError(err).Errorf("Failed to send message to Telegram: %q", text)
		return
	}
	logCtx.Debugf("Bot sent message: %s", text)
}
