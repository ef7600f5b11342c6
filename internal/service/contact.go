package service

import (
	"context"
	"errors"
	"fmt"

	"storefront/config"
	"storefront/internal/database/mongodb/model"
	"storefront/internal/database/mongodb/repository"
	"storefront/internal/dto"
	cErr "storefront/internal/pkg/error"
	"storefront/internal/query"
	"storefront/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ContactService struct {
	logger      *zap.Logger
	trace       *telemetry.Trace
	config      *config.Configuration
	contactRepo *repository.ContactRepository
	mailer      Mailer
}

func NewContactService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	contactRepo *repository.ContactRepository,
	mailer Mailer,
) *ContactService {
	return &ContactService{
		logger:      logger,
		trace:       trace,
		config:      config,
		contactRepo: contactRepo,
		mailer:      mailer,
	}
}

// CreateContact 公開表單；入庫成功後非同步寄通知信，寄信失敗不影響回應
func (s *ContactService) CreateContact(ctx context.Context, payload *dto.CreateContactDto) (*model.Contact, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	contact := &model.Contact{
		ID:      primitive.NewObjectID(),
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
		Status:  model.ContactStatusNew,
	}
	created, err := s.contactRepo.Create(ctx, contact)
	if err != nil {
		return nil, cErr.DatabaseError("database CreateContact error")
	}

	if recipient := s.config.Mail.ContactRecipient; recipient != "" {
		go func() {
			subject := fmt.Sprintf("[contact] %s", created.Subject)
			body := fmt.Sprintf("From: %s <%s>\n\n%s", created.Name, created.Email, created.Message)
			if err := s.mailer.Send(context.Background(), recipient, subject, body); err != nil {
				s.logger.Warn("contact notification mail failed", zap.String("contact_id", created.ID.Hex()), zap.Error(err))
			}
		}()
	}
	return created, nil
}

func (s *ContactService) ListContacts(ctx context.Context, params map[string]string) (*query.Result[model.Contact], error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	result, err := query.Paginate(ctx, s.contactRepo.Store(), params, nil)
	if err != nil {
		return nil, cErr.DatabaseError("database ListContacts error")
	}
	return result, nil
}

func (s *ContactService) GetContactByID(ctx context.Context, id primitive.ObjectID) (*model.Contact, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("contact not found")
		}
		return nil, cErr.DatabaseError("database GetContactByID error")
	}
	return contact, nil
}

func (s *ContactService) UpdateContactStatus(ctx context.Context, id primitive.ObjectID, status model.ContactStatus) (*model.Contact, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	contact, err := s.contactRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("contact not found")
		}
		return nil, cErr.DatabaseError("database UpdateContactStatus error")
	}
	return contact, nil
}

func (s *ContactService) DeleteContact(ctx context.Context, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.contactRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("contact not found")
		}
		return cErr.DatabaseError("database DeleteContact error")
	}
	return nil
}
