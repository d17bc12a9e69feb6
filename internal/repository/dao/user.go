package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUsernameExists = errors.New("username already taken")
	ErrEmailExists    = errors.New("email already registered")
	ErrUserNotFound   = errors.New("user not found")
	ErrRankNotFound   = errors.New("rank not found")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Username     string `gorm:"unique;not null"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`

	FullName    string
	Gender      string
	PhoneNumber string
	GroupNum    string
	DateOfBirth *time.Time `gorm:"type:date"`
	LastActive  *time.Time

	Role     string `gorm:"not null;default:user"` // "admin" or "user"
	IsActive bool   `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}

type UsersRank struct {
	ID       uint   `gorm:"primaryKey"`
	UserID   uint   `gorm:"not null;index"`
	User     User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RankName string `gorm:"not null"`
	Points   int    `gorm:"not null;default:0"`
}

func (UsersRank) TableName() string {
	return "users_rank"
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			if strings.Contains(pgErr.Message, `"uni_users_username"`) {
				return User{}, ErrUsernameExists
			}
			if strings.Contains(pgErr.Message, `"uni_users_email"`) {
				return User{}, ErrEmailExists
			}
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User
	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByUsername(ctx context.Context, username string) (User, error) {
	var user User
	result := d.db.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User
	result := d.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindAll(ctx context.Context) ([]User, error) {
	var users []User
	result := d.db.WithContext(ctx).Order("id").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

func (d *UserDAO) Update(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Save(&user)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, `"uni_users_username"`) {
			return User{}, ErrUsernameExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (d *UserDAO) FindRankByUserID(ctx context.Context, userID uint) (UsersRank, error) {
	var rank UsersRank
	result := d.db.WithContext(ctx).Where("user_id = ?", userID).First(&rank)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return UsersRank{}, ErrRankNotFound
		}

		return UsersRank{}, result.Error
	}

	return rank, nil
}

// UpdateRankName overwrites the rank label of an existing rank row. It never
// creates one: users without a rank row stay without it.
func (d *UserDAO) UpdateRankName(ctx context.Context, userID uint, rankName string) (UsersRank, error) {
	var rank UsersRank
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&rank).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRankNotFound
			}

			return err
		}

		rank.RankName = rankName

		return tx.Save(&rank).Error
	})
	if err != nil {
		return UsersRank{}, err
	}

	return rank, nil
}
