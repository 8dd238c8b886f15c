package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"fieldjobs/internal/auth"
	"fieldjobs/internal/domain/entities"
	"fieldjobs/internal/usecase/interfaces"
)

var (
	ErrJobNotCompleted      = errors.New("job not completed")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// IPaymentUseCase creates a payment intent for a completed job. The intent
// itself is a stateless call into the external processor; only the provider
// reference is persisted, keyed by job.

type IPaymentUseCase interface {
	CreateIntent(ctx context.Context, caller auth.Identity, jobID string, method entities.PaymentMethod) (entities.Payment, error)
}

type PaymentUseCase struct {
	jobs     interfaces.IJobRepository
	payments interfaces.IPaymentRepository
	gateway  interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(jobs interfaces.IJobRepository, payments interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{jobs: jobs, payments: payments, gateway: gateway}
}

func (u *PaymentUseCase) CreateIntent(ctx context.Context, caller auth.Identity, jobID string, method entities.PaymentMethod) (entities.Payment, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Payment{}, ErrInvalidJobID
	}
	if method != entities.PaymentMethodApplePay && method != entities.PaymentMethodCard {
		return entities.Payment{}, ErrInvalidPaymentMethod
	}
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Payment{}, err
	}
	if job.ID == "" {
		return entities.Payment{}, ErrJobNotFound
	}
	if err := requireRelationship(job, caller.ID, relationshipCustomer); err != nil {
		return entities.Payment{}, err
	}
	if job.Status != entities.JobStatusCompleted {
		return entities.Payment{}, ErrJobNotCompleted
	}
	if !job.Estimate.Exists() {
		return entities.Payment{}, ErrEstimateMissing
	}

	// The current amount is the price truth: it reflects every approved
	// renegotiation.
	amountCents := job.Estimate.CurrentAmountCents
	currency := job.Estimate.Currency

	providerID, providerStatus, _, err := u.gateway.CreateIntent(ctx, amountCents, currency, map[string]string{"jobId": jobID})
	if err != nil {
		log.Printf("[payment][intent] gateway create failed job_id=%s err=%v", jobID, err)
		return entities.Payment{}, err
	}

	now := time.Now().UTC()
	payment := entities.Payment{
		JobID:             jobID,
		AmountCents:       amountCents,
		Currency:          currency,
		Status:            entities.PaymentStatusRequiresConfirmation,
		Method:            method,
		ProviderPaymentID: providerID,
		ProviderStatus:    providerStatus,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return u.payments.Upsert(ctx, payment)
}
