package recognition

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/notifier"
	"github.com/hrkit/hrkit/internal/pkg"
	"github.com/hrkit/hrkit/internal/store"
)

// Service carries the award workflow that spans both recognition tables.
type Service struct {
	db          *gorm.DB
	awards      *store.Store[domain.Award, *domain.Award]
	nominations *store.Store[domain.Nomination, *domain.Nomination]
	notifier    notifier.Notifier
	log         *slog.Logger
}

// NewService creates the recognition service.
func NewService(db *gorm.DB, awards *store.Store[domain.Award, *domain.Award],
	nominations *store.Store[domain.Nomination, *domain.Nomination],
	n notifier.Notifier, log *slog.Logger) *Service {
	if n == nil {
		n = notifier.Noop{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{db: db, awards: awards, nominations: nominations, notifier: n, log: log}
}

// AwardNomination grants a pending nomination: the nomination flips to
// awarded and an award row is created, both inside one transaction so the
// pair either lands together or not at all.
func (s *Service) AwardNomination(ctx context.Context, id uint, actor string) (*domain.Award, error) {
	var award *domain.Award

	err := pkg.WithTx(s.db, func(tx *gorm.DB) error {
		nominations := s.nominations.WithTx(tx)

		nom, err := nominations.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if nom.Status == domain.NominationAwarded {
			return domain.NewAppError(domain.CodeValidation, "nomination is already awarded", nil)
		}

		nom, err = nominations.Update(ctx, id, actor, func(n *domain.Nomination) {
			n.Status = domain.NominationAwarded
		})
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		a := &domain.Award{
			EmployeeID:   nom.EmployeeID,
			Title:        nom.Title,
			Description:  nom.Reason,
			AwardedAt:    &now,
			NominationID: &nom.ID,
		}
		if err := s.awards.WithTx(tx).Create(ctx, a, actor); err != nil {
			return err
		}

		award = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.congratulate(award)
	return award, nil
}

// congratulate emails the awarded employee in the background. Delivery is
// best effort; failures are logged and never surface to the caller.
func (s *Service) congratulate(a *domain.Award) {
	var emp domain.Employee
	if err := s.db.Where("is_deleted = ?", false).First(&emp, a.EmployeeID).Error; err != nil {
		s.log.Warn("award notification skipped: employee lookup failed",
			slog.Uint64("employee_id", uint64(a.EmployeeID)), slog.Any("error", err))
		return
	}
	if emp.Email == "" {
		return
	}

	subject := fmt.Sprintf("Congratulations on your award: %s", a.Title)
	body := fmt.Sprintf("<p>Hi %s,</p><p>You have been granted the award <strong>%s</strong>. Congratulations!</p>",
		emp.Name, a.Title)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.notifier.SendEmail(ctx, emp.Email, subject, body); err != nil {
			s.log.Warn("award notification failed",
				slog.String("to", emp.Email), slog.Any("error", err))
		}
	}()
}
