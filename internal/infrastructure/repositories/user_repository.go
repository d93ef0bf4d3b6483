package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/you/shopsvc/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint      `gorm:"primaryKey"`
	FirstName    string    `gorm:"size:128;not null"`
	LastName     string    `gorm:"size:128;not null"`
	Email        string    `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `gorm:"column:password;not null"`
	Phone        string    `gorm:"size:32"`
	Address      string    `gorm:"size:512"`
	Role         string    `gorm:"index;size:64;default:User"`
	DateJoined   time.Time
	// Serialized {"email":bool,"sms":bool}; parsed leniently on read
	Notifications string `gorm:"size:255"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. The unique index on email is the
// single source of truth for duplicates; violations map to ErrEmailTaken.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// UpdatePassword implements domain.UserRepository. The bool reports whether a
// row matched, so callers can distinguish a vanished user.
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, userID uint, passwordHash string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Update("password", passwordHash)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdateAccount implements domain.UserRepository. Profile fields and the
// password hash are written inside one transaction so a failure cannot leave
// a half-applied settings update.
func (r *UserRepositoryImpl) UpdateAccount(ctx context.Context, user *domain.User, passwordHash string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&DBUser{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
			"first_name":    user.FirstName,
			"last_name":     user.LastName,
			"phone":         user.Phone,
			"notifications": user.Notifications,
		}).Error; err != nil {
			return err
		}
		if passwordHash != "" {
			if err := tx.Model(&DBUser{}).Where("id = ?", user.ID).Update("password", passwordHash).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		PasswordHash:  user.PasswordHash,
		Phone:         user.Phone,
		Address:       user.Address,
		Role:          user.Role,
		DateJoined:    user.DateJoined,
		Notifications: user.Notifications,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:            dbUser.ID,
		FirstName:     dbUser.FirstName,
		LastName:      dbUser.LastName,
		Email:         dbUser.Email,
		PasswordHash:  dbUser.PasswordHash,
		Phone:         dbUser.Phone,
		Address:       dbUser.Address,
		Role:          dbUser.Role,
		DateJoined:    dbUser.DateJoined,
		Notifications: dbUser.Notifications,
		CreatedAt:     dbUser.CreatedAt,
		UpdatedAt:     dbUser.UpdatedAt,
	}
}
