package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
	domainerrors "github.com/Felix-Hz/cofr/internal/domain/errors"
	"github.com/Felix-Hz/cofr/internal/domain/repository"
	"github.com/Felix-Hz/cofr/internal/infra/persistence/model"
)

// linkRepository implements the domain.LinkRepository interface.
type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository is the constructor for linkRepository.
func NewLinkRepository(db *gorm.DB) repository.LinkRepository {
	return &linkRepository{db: db}
}

// Create persists a new provider link record.
func (repo *linkRepository) Create(ctx context.Context, link *entity.ProviderLink) error {
	linkM := fromProviderLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		// The unique index on (provider, provider_user_id) is the arbiter
		// for concurrent logins of the same external identity.
		if isUniqueConstraintViolation(err) {
			return repository.ErrLinkConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound.WrapMessage("invalid account reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required link information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create provider link")
	}

	// Update the entity with generated values
	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt

	return nil
}

// FindByProviderAndSubject retrieves a link by provider and subject id.
func (repo *linkRepository) FindByProviderAndSubject(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.ProviderLink, error) {
	var linkM model.ProviderLinkModel
	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", string(provider), providerUserID).
		First(&linkM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toProviderLinkDomain(&linkM), nil
}

// FindByEmail retrieves any link carrying the given email. When several
// providers assert the same address, the oldest link wins.
func (repo *linkRepository) FindByEmail(ctx context.Context, email string) (*entity.ProviderLink, error) {
	var linkM model.ProviderLinkModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at ASC").
		First(&linkM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toProviderLinkDomain(&linkM), nil
}

// FindByID retrieves a link by its own id.
func (repo *linkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProviderLink, error) {
	var linkM model.ProviderLinkModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&linkM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toProviderLinkDomain(&linkM), nil
}

// ListByAccountID returns all links owned by the given account.
func (repo *linkRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.ProviderLink, error) {
	var linkModels []model.ProviderLinkModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&linkModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	links := make([]*entity.ProviderLink, 0, len(linkModels))
	for i := range linkModels {
		links = append(links, toProviderLinkDomain(&linkModels[i]))
	}

	return links, nil
}

// CountByAccountID returns how many links the account currently holds.
func (repo *linkRepository) CountByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProviderLinkModel{}).
		Where("account_id = ?", accountID).
		Count(&count).Error

	if err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// Delete removes a link by its ID.
func (repo *linkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProviderLinkModel{})

	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	// If no rows were affected, it means the link was not found.
	if result.RowsAffected == 0 {
		return repository.ErrLinkNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProviderLinkDomain converts a GORM ProviderLinkModel to a domain ProviderLink entity.
func toProviderLinkDomain(data *model.ProviderLinkModel) *entity.ProviderLink {
	if data == nil {
		return nil
	}

	return &entity.ProviderLink{
		ID:             data.ID,
		AccountID:      data.AccountID,
		Provider:       entity.ProviderType(data.Provider),
		ProviderUserID: data.ProviderUserID,
		Email:          data.Email,
		DisplayName:    data.DisplayName,
		CreatedAt:      data.CreatedAt,
	}
}

// fromProviderLinkDomain converts a domain ProviderLink entity to a GORM ProviderLinkModel.
func fromProviderLinkDomain(data *entity.ProviderLink) *model.ProviderLinkModel {
	if data == nil {
		return nil
	}

	return &model.ProviderLinkModel{
		ID:             data.ID,
		AccountID:      data.AccountID,
		Provider:       string(data.Provider),
		ProviderUserID: data.ProviderUserID,
		Email:          data.Email,
		DisplayName:    data.DisplayName,
	}
}
