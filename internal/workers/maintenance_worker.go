package workers

import (
	"context"
	"time"

	"mychild_backend/internal/email"
	"mychild_backend/internal/logger"
	"mychild_backend/internal/repositories"

	"gorm.io/gorm"
)

// MaintenanceWorker выполняет фоновое обслуживание:
// протухание брошенных платежей и напоминания о висящих заявках.
type MaintenanceWorker struct {
	db            *gorm.DB
	paymentRepo   repositories.PaymentRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	adminEmail    string
}

func NewMaintenanceWorker(
	db *gorm.DB,
	paymentRepo repositories.PaymentRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	adminEmail string,
) *MaintenanceWorker {
	return &MaintenanceWorker{
		db:            db,
		paymentRepo:   paymentRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
		adminEmail:    adminEmail,
	}
}

// Start запускает фоновые задачи
func (w *MaintenanceWorker) Start(ctx context.Context) {
	go w.expireStalePayments(ctx)
	go w.pendingRequestsDigest(ctx)
}

// expireStalePayments помечает pending-платежи старше суток как expired
func (w *MaintenanceWorker) expireStalePayments(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Maintenance worker stopped", "task", "expire_payments")
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-24 * time.Hour)
			count, err := w.paymentRepo.ExpireStale(w.db, cutoff)
			if err != nil {
				logger.WorkerLog("maintenance", "expire_payments", err)
				continue
			}
			if count > 0 {
				logger.Info("Expired stale payment transactions", "count", count)
			}
		}
	}
}

// pendingRequestsDigest раз в сутки напоминает админу о висящих заявках
func (w *MaintenanceWorker) pendingRequestsDigest(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Maintenance worker stopped", "task", "pending_digest")
			return
		case <-ticker.C:
			count, err := w.userRepo.CountPending(w.db)
			if err != nil {
				logger.WorkerLog("maintenance", "pending_digest", err)
				continue
			}
			if count == 0 || w.adminEmail == "" {
				continue
			}

			err = w.emailProvider.SendTemplate(
				[]string{w.adminEmail},
				"Demandes d'inscription en attente",
				email.TemplatePendingDigest,
				email.TemplateData{"Count": count},
			)
			logger.WorkerLog("maintenance", "pending_digest", err)
		}
	}
}
