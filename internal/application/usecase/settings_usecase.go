package usecase

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goitom/finance-api/internal/application/dto"
	"github.com/goitom/finance-api/internal/domain"
	"github.com/goitom/finance-api/internal/domain/entity"
	"github.com/goitom/finance-api/internal/domain/repository"
)

// Defaults applied to a settings record that has never been saved.
const (
	defaultCurrency      = "EUR"
	defaultInvoicePrefix = "INV"
)

var defaultTaxRate = decimal.NewFromInt(21)

// LogoStore persists an uploaded logo and returns the public URL it will be
// served from.
type LogoStore interface {
	SaveLogo(userID, filename string, content io.Reader) (string, error)
}

// SettingsUseCase manages the per-user settings and organization singletons.
type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	orgRepo      repository.OrganizationRepository
	logos        LogoStore
}

func NewSettingsUseCase(settingsRepo repository.SettingsRepository, orgRepo repository.OrganizationRepository, logos LogoStore) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo, orgRepo: orgRepo, logos: logos}
}

// GetSettings returns the user's settings, creating the record with defaults
// on first access.
func (uc *SettingsUseCase) GetSettings(userID string) (*dto.SettingsResponse, error) {
	settings, err := uc.ensureSettings(userID)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// UpdateSettings overwrites the user's settings. Missing currency and prefix
// fall back to the defaults so a partial save never blanks them.
func (uc *SettingsUseCase) UpdateSettings(userID string, in dto.SettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := uc.ensureSettings(userID)
	if err != nil {
		return nil, err
	}
	if in.TaxRate.IsNegative() {
		return nil, fmt.Errorf("%w: tax rate must not be negative", domain.ErrInvalidInput)
	}
	settings.Currency = in.Currency
	if settings.Currency == "" {
		settings.Currency = defaultCurrency
	}
	settings.InvoicePrefix = in.InvoicePrefix
	if settings.InvoicePrefix == "" {
		settings.InvoicePrefix = defaultInvoicePrefix
	}
	settings.TaxRate = in.TaxRate
	settings.InvoiceTerms = in.InvoiceTerms
	settings.InvoiceNotes = in.InvoiceNotes
	settings.UpdatedAt = time.Now()
	if err := uc.settingsRepo.Update(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// GetOrganization returns the user's organization, creating an empty record
// on first access.
func (uc *SettingsUseCase) GetOrganization(userID string) (*dto.OrganizationResponse, error) {
	org, err := uc.ensureOrganization(userID)
	if err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// UpdateOrganization overwrites the organization profile. The logo URL is
// managed by UploadLogo and left untouched here.
func (uc *SettingsUseCase) UpdateOrganization(userID string, in dto.OrganizationRequest) (*dto.OrganizationResponse, error) {
	org, err := uc.ensureOrganization(userID)
	if err != nil {
		return nil, err
	}
	org.Name = in.Name
	org.Address = in.Address
	org.City = in.City
	org.Country = in.Country
	org.PostalCode = in.PostalCode
	org.Phone = in.Phone
	org.Email = in.Email
	org.Website = in.Website
	org.TaxID = in.TaxID
	org.UpdatedAt = time.Now()
	if err := uc.orgRepo.Update(org); err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// UploadLogo stores the file and records its public URL on the organization.
func (uc *SettingsUseCase) UploadLogo(userID, filename string, content io.Reader) (*dto.OrganizationResponse, error) {
	if filename == "" {
		return nil, fmt.Errorf("%w: filename is required", domain.ErrInvalidInput)
	}
	org, err := uc.ensureOrganization(userID)
	if err != nil {
		return nil, err
	}
	url, err := uc.logos.SaveLogo(userID, filename, content)
	if err != nil {
		return nil, fmt.Errorf("saving logo: %w", err)
	}
	org.LogoURL = url
	org.UpdatedAt = time.Now()
	if err := uc.orgRepo.Update(org); err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

func (uc *SettingsUseCase) ensureSettings(userID string) (*entity.Settings, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	settings, err := uc.settingsRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}
	now := time.Now()
	settings = &entity.Settings{
		ID:            uuid.New().String(),
		UserID:        userID,
		Currency:      defaultCurrency,
		TaxRate:       defaultTaxRate,
		InvoicePrefix: defaultInvoicePrefix,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.settingsRepo.Create(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (uc *SettingsUseCase) ensureOrganization(userID string) (*entity.Organization, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	org, err := uc.orgRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if org != nil {
		return org, nil
	}
	now := time.Now()
	org = &entity.Organization{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.orgRepo.Create(org); err != nil {
		return nil, err
	}
	return org, nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		Currency:      s.Currency,
		TaxRate:       s.TaxRate,
		InvoicePrefix: s.InvoicePrefix,
		InvoiceTerms:  s.InvoiceTerms,
		InvoiceNotes:  s.InvoiceNotes,
	}
}

func toOrganizationResponse(o *entity.Organization) *dto.OrganizationResponse {
	return &dto.OrganizationResponse{
		Name:       o.Name,
		Address:    o.Address,
		City:       o.City,
		Country:    o.Country,
		PostalCode: o.PostalCode,
		Phone:      o.Phone,
		Email:      o.Email,
		Website:    o.Website,
		TaxID:      o.TaxID,
		LogoURL:    o.LogoURL,
	}
}
