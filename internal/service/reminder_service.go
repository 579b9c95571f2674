package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tensorlabs/amaanat/internal/config"
	"github.com/tensorlabs/amaanat/internal/domain"
	"github.com/tensorlabs/amaanat/internal/reminder"
	"github.com/tensorlabs/amaanat/internal/repository"
	"github.com/tensorlabs/amaanat/internal/transport"
	customError "github.com/tensorlabs/amaanat/pkg/errors"
)

const dedupeTTL = 24 * time.Hour

// ReminderService evaluates accounts through the reminder engine and pushes
// the rendered messages out via the transport.
type ReminderService struct {
	repo      repository.AccountRepository
	transport transport.Transport
	redis     *redis.Client
	cfg       *config.Config
}

func NewReminderService(
	repo repository.AccountRepository,
	transport transport.Transport,
	redis *redis.Client,
	cfg *config.Config,
) *ReminderService {
	return &ReminderService{
		repo:      repo,
		transport: transport,
		redis:     redis,
		cfg:       cfg,
	}
}

// Preview computes the reminder outcome for an account without sending
// anything.
func (s *ReminderService) Preview(ctx context.Context, id uuid.UUID, ref time.Time) (*domain.ReminderOutcome, error) {
	acct, err := s.getAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	outcome := reminder.Evaluate(*acct, ref)
	return &outcome, nil
}

// Dispatch renders the reminder for one account and sends it to every
// selected recipient. Per-recipient transport failures are counted, not
// returned: one bad number must not block the rest.
func (s *ReminderService) Dispatch(ctx context.Context, id uuid.UUID, ref time.Time) (*domain.DeliveryReport, error) {
	acct, err := s.getAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	report := &domain.DeliveryReport{AccountID: acct.ID}

	if s.cfg.Reminder.DedupeSends {
		fresh, err := s.markSent(ctx, acct.ID, ref)
		if err != nil {
			// a broken cache must not stop reminders going out
			log.Printf("reminder dedupe check failed for account %s: %v", acct.ID, err)
		} else if !fresh {
			report.Deduped = true
			return report, nil
		}
	}

	outcome := reminder.Evaluate(*acct, ref)

	if outcome.BorrowerRecipient != "" {
		if err := s.transport.Send(ctx, outcome.BorrowerRecipient, outcome.BorrowerMessage); err != nil {
			log.Printf("borrower send failed for account %s: %v", acct.ID, err)
			report.Failed++
		} else {
			report.Sent++
		}
	}

	for _, mobile := range outcome.GuarantorRecipients {
		if err := s.transport.Send(ctx, mobile, outcome.GuarantorMessage); err != nil {
			log.Printf("guarantor send failed for account %s: %v", acct.ID, err)
			report.Failed++
		} else {
			report.Sent++
		}
	}

	return report, nil
}

// DispatchDue runs the scheduler pass: every account whose due date is known
// and falls at or before the upcoming window gets a reminder. Accounts
// without a parseable due date are skipped here; their offset-zero rendering
// is only reachable through an explicit Dispatch.
func (s *ReminderService) DispatchDue(ctx context.Context, ref time.Time) (*domain.DispatchSummary, error) {
	accounts, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	summary := &domain.DispatchSummary{}
	window := s.cfg.Reminder.UpcomingWindowDays

	for _, acct := range accounts {
		if _, err := reminder.ParseDueDate(acct.DueDate); err != nil {
			continue
		}
		if reminder.DayOffset(acct.DueDate, ref) > window {
			continue
		}

		report, err := s.Dispatch(ctx, acct.ID, ref)
		if err != nil {
			log.Printf("dispatch failed for account %s: %v", acct.ID, err)
			continue
		}

		summary.Accounts++
		summary.Sent += report.Sent
		summary.Failed += report.Failed
		if report.Deduped {
			summary.Deduped++
		}
	}

	return summary, nil
}

// markSent sets the per-account per-day dedupe guard. Returns false when a
// reminder already went out for this account today.
func (s *ReminderService) markSent(ctx context.Context, id uuid.UUID, ref time.Time) (bool, error) {
	key := fmt.Sprintf("reminder:sent:%s:%s", id, ref.Format("2006-01-02"))
	fresh, err := s.redis.SetNX(ctx, key, 1, dedupeTTL).Result()
	if err != nil {
		return false, customError.WrapCacheError(err)
	}
	return fresh, nil
}

func (s *ReminderService) getAccount(ctx context.Context, id uuid.UUID) (*domain.LoanAccount, error) {
	acct, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapAccountNotFound(id.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return acct, nil
}
