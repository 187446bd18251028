package service

import (
	"context"
	"errors"
	"fmt"

	"menu-admin/menu-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

type QRCodeService struct {
	repo      QRCodeRepository
	generator QRGenerator
	validator Validator
	publisher EventPublisher
}

func NewQRCodeService(repo QRCodeRepository, generator QRGenerator, validator Validator, publisher EventPublisher) *QRCodeService {
	return &QRCodeService{
		repo:      repo,
		generator: generator,
		validator: validator,
		publisher: publisher,
	}
}

func (s *QRCodeService) Create(ctx context.Context, input domain.CreateQRCodeInput) (*domain.QRCode, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	qr := &domain.QRCode{
		Name:      input.Name,
		MenuURL:   input.MenuURL,
		QRCodeURL: s.generator.ImageURL(input.MenuURL),
		IsActive:  boolOr(input.IsActive, true),
	}
	if err := s.repo.CreateQRCode(ctx, qr); err != nil {
		log.Error().Err(err).Str("name", input.Name).Msg("QR code creation failed")
		return nil, fmt.Errorf("create QR code: %w", err)
	}

	publish(ctx, s.publisher, domain.EventCreated, domain.EntityQRCode, qr.ID)
	return qr, nil
}

func (s *QRCodeService) List(ctx context.Context) ([]domain.QRCode, error) {
	codes, err := s.repo.ListQRCodes(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list QR codes")
		return nil, fmt.Errorf("list QR codes: %w", err)
	}
	if codes == nil {
		codes = []domain.QRCode{}
	}
	return codes, nil
}

func (s *QRCodeService) GetByID(ctx context.Context, id int) (*domain.QRCode, error) {
	qr, err := s.repo.GetQRCode(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to get QR code")
		return nil, fmt.Errorf("get QR code %d: %w", id, err)
	}
	return qr, nil
}

// Update recomputes qr_code_url in the same write whenever menu_url is
// present.
func (s *QRCodeService) Update(ctx context.Context, input domain.UpdateQRCodeInput) (*domain.QRCode, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	var qrCodeURL *string
	if input.MenuURL != nil {
		u := s.generator.ImageURL(*input.MenuURL)
		qrCodeURL = &u
	}

	qr, err := s.repo.UpdateQRCode(ctx, input, qrCodeURL)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Int("id", input.ID).Msg("QR code update failed")
		return nil, fmt.Errorf("update QR code %d: %w", input.ID, err)
	}

	publish(ctx, s.publisher, domain.EventUpdated, domain.EntityQRCode, qr.ID)
	return qr, nil
}

// Regenerate issues a fresh image URL for the current menu URL. The
// revision is a per-row counter kept with the QR code, so every call yields
// a URL the row has not held before.
func (s *QRCodeService) Regenerate(ctx context.Context, id int) (*domain.QRCode, error) {
	qr, err := s.repo.RegenerateQRCode(ctx, id, s.generator.RevisionURL)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("QR code regeneration failed")
		return nil, fmt.Errorf("regenerate QR code %d: %w", id, err)
	}

	publish(ctx, s.publisher, domain.EventRegenerated, domain.EntityQRCode, qr.ID)
	return qr, nil
}

func (s *QRCodeService) Delete(ctx context.Context, id int) (bool, error) {
	rows, err := s.repo.DeleteQRCode(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("QR code deletion failed")
		return false, fmt.Errorf("delete QR code %d: %w", id, err)
	}
	if rows == 0 {
		return false, nil
	}

	publish(ctx, s.publisher, domain.EventDeleted, domain.EntityQRCode, id)
	return true, nil
}
