package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"guid-gatherer/models"
	"guid-gatherer/types"
	"guid-gatherer/utils"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(DB *gorm.DB) *UserRepository {
	return &UserRepository{DB: DB}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return utils.WrapStoreError("create user", translate(r.DB.WithContext(ctx).Create(user).Error))
}

// FindByEmail loads the full user, password hash included.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).Take(&user).Error; err != nil {
		return nil, utils.WrapStoreError("find user", translate(err))
	}
	return &user, nil
}

// FindByID loads the user without its password hash.
func (r *UserRepository) FindByID(ctx context.Context, id types.SnowflakeID) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Omit("password").Where("id = ?", id).Take(&user).Error; err != nil {
		return nil, utils.WrapStoreError("find user", translate(err))
	}
	return &user, nil
}

// MemoryUserRepository is the DB_DRIVER=memory counterpart of UserRepository.
type MemoryUserRepository struct {
	*MemoryRepository[models.User, *models.User]
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{MemoryRepository: NewMemoryRepository[models.User, *models.User]()}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if strings.EqualFold(existing.Email, user.Email) {
			return &utils.DuplicateError{Message: "Record with these details already exists"}
		}
	}
	r.insertLocked(user)
	return nil
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, existing := range r.records {
		if strings.EqualFold(existing.Email, email) {
			user := existing
			return &user, nil
		}
	}
	return nil, utils.ErrRecordNotFound
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id types.SnowflakeID) (*models.User, error) {
	user, err := r.MemoryRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}
