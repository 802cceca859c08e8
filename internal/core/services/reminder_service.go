package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

type reminderService struct {
	BaseService
	documentRepo     portsrepo.DocumentReader
	counterpartyRepo portsrepo.CounterpartyReader
	refRepo          portsrepo.ReferenceDataReader
	notifier         portssvc.NotificationSvcFacade
	inactiveStatus   string
}

// NewReminderService creates the sweep that turns upcoming document expiries
// and due reviews into notifications. Counterparties in inactiveStatusCode are skipped.
func NewReminderService(
	documentRepo portsrepo.DocumentReader,
	counterpartyRepo portsrepo.CounterpartyReader,
	refRepo portsrepo.ReferenceDataReader,
	notifier portssvc.NotificationSvcFacade,
	inactiveStatusCode string,
	opts ...Option,
) portssvc.ReminderSvc {
	return &reminderService{
		BaseService:      newBaseService(opts),
		documentRepo:     documentRepo,
		counterpartyRepo: counterpartyRepo,
		refRepo:          refRepo,
		notifier:         notifier,
		inactiveStatus:   inactiveStatusCode,
	}
}

var _ portssvc.ReminderSvc = (*reminderService)(nil)

func (s *reminderService) Sweep(ctx context.Context) (report *domain.ReminderReport, err error) {
	start := time.Now()
	defer func() {
		s.Metrics.ObserveReminderRun(err, time.Since(start))
	}()

	now := s.Now()
	today := lifecycle.Date(now)
	expiringBy := today.AddDate(0, 0, lifecycle.WarningWindowDays)
	// Each recipient narrows this to their own warning window below.
	renewalBy := today.AddDate(0, 0, domain.MaxDDWarningDays)

	excluded, err := s.inactiveStatusID(ctx)
	if err != nil {
		return nil, err
	}

	var (
		docs []domain.Document
		cps  []domain.Counterparty
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		docs, err = s.documentRepo.ListExpiringDocuments(gctx, expiringBy)
		if err != nil {
			return fmt.Errorf("scan expiring documents: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cps, err = s.counterpartyRepo.ListDueForRenewal(gctx, renewalBy, excluded)
		if err != nil {
			return fmt.Errorf("scan due counterparties: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Reminder sweep scan failed")
		return nil, err
	}

	report = &domain.ReminderReport{
		DocumentsScanned:      len(docs),
		CounterpartiesScanned: len(cps),
		Sent:                  map[domain.NotificationKind]int{},
	}
	warningDays := map[string]int{}

	for _, d := range docs {
		n, ok := documentReminder(d, now)
		if !ok {
			continue
		}
		if err := s.deliver(ctx, n, report); err != nil {
			return nil, err
		}
	}
	for _, cp := range cps {
		if cp.CreatedBy == "" {
			continue
		}
		window, err := s.warningWindow(ctx, cp.CreatedBy, warningDays)
		if err != nil {
			return nil, err
		}
		if !lifecycle.Within(cp.DaysUntilDueDiligence(now), window) {
			report.Skipped++
			continue
		}
		if err := s.deliver(ctx, renewalReminder(cp, now), report); err != nil {
			return nil, err
		}
	}

	for kind, n := range report.Sent {
		s.Metrics.AddRemindersSent(string(kind), n)
	}
	s.LogInfo(ctx, "Reminder sweep finished",
		slog.Int("documents_scanned", report.DocumentsScanned),
		slog.Int("counterparties_scanned", report.CounterpartiesScanned),
		slog.Int("sent", report.Total()),
		slog.Int("skipped", report.Skipped))
	return report, nil
}

func (s *reminderService) deliver(ctx context.Context, n domain.Notification, report *domain.ReminderReport) error {
	sent, err := s.notifier.Notify(ctx, n)
	if err != nil {
		return err
	}
	if sent {
		report.Sent[n.Kind]++
	} else {
		report.Skipped++
	}
	return nil
}

// warningWindow returns the user's due-diligence warning window, caching per sweep.
func (s *reminderService) warningWindow(ctx context.Context, userID string, cache map[string]int) (int, error) {
	if w, ok := cache[userID]; ok {
		return w, nil
	}
	settings, err := s.notifier.GetSettings(ctx, domain.Actor{UserID: userID})
	if err != nil {
		return 0, err
	}
	w := settings.DDWarningDays
	if w <= 0 {
		w = lifecycle.WarningWindowDays
	}
	cache[userID] = w
	return w, nil
}

func (s *reminderService) inactiveStatusID(ctx context.Context) (string, error) {
	if s.inactiveStatus == "" {
		return "", nil
	}
	status, err := s.refRepo.FindCounterpartyStatusByCode(ctx, s.inactiveStatus)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return status.StatusID, nil
}

func documentReminder(d domain.Document, now time.Time) (domain.Notification, bool) {
	exp := d.Expiry(now)
	if d.CreatedBy == "" || exp.DaysToExpiry == nil {
		return domain.Notification{}, false
	}
	days := *exp.DaysToExpiry
	cpID := d.CounterpartyID
	n := domain.Notification{
		RecipientID:    d.CreatedBy,
		SubjectID:      d.DocumentID,
		CounterpartyID: &cpID,
	}
	switch exp.Status {
	case lifecycle.StatusOverdue:
		n.Kind = domain.NotifyDocumentExpired
		n.Priority = domain.PriorityHigh
		n.Title = "Document expired"
		n.Message = fmt.Sprintf("%s expired %d day(s) ago.", documentLabel(d), -days)
	case lifecycle.StatusDueToday:
		n.Kind = domain.NotifyDocumentExpiring
		n.Priority = domain.PriorityHigh
		n.Title = "Document expires today"
		n.Message = fmt.Sprintf("%s expires today.", documentLabel(d))
	case lifecycle.StatusDueSoon:
		n.Kind = domain.NotifyDocumentExpiring
		n.Priority = domain.PriorityNormal
		n.Title = "Document expiring soon"
		n.Message = fmt.Sprintf("%s expires in %d day(s).", documentLabel(d), days)
	default:
		return domain.Notification{}, false
	}
	return n, true
}

func renewalReminder(cp domain.Counterparty, now time.Time) domain.Notification {
	days := cp.DaysUntilDueDiligence(now)
	cpID := cp.CounterpartyID
	n := domain.Notification{
		RecipientID:    cp.CreatedBy,
		SubjectID:      cp.CounterpartyID,
		CounterpartyID: &cpID,
	}
	if days < 0 {
		n.Kind = domain.NotifyDueDiligenceOverdue
		n.Priority = domain.PriorityUrgent
		n.Title = "Due diligence overdue"
		n.Message = fmt.Sprintf("The due diligence of %s is %d day(s) overdue.", cp.FullCompanyName, -days)
		return n
	}
	n.Kind = domain.NotifyDueDiligenceSoon
	n.Priority = domain.PriorityHigh
	if days > 7 {
		n.Priority = domain.PriorityNormal
	}
	n.Title = "Due diligence due soon"
	n.Message = fmt.Sprintf("The due diligence of %s is due in %d day(s).", cp.FullCompanyName, days)
	return n
}

func documentLabel(d domain.Document) string {
	if d.File.FileName != "" {
		return d.File.FileName
	}
	return "A document"
}
