package service

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"habit_streak_backend/internal/model"
	"habit_streak_backend/internal/util"
)

type UserRepo interface {
	FindByID(id uint) (*model.User, error)
	Update(user *model.User) error
	SetBanned(userID uint, banned bool) error
	SetMuted(userID uint, muted bool) error
	Search(search string, page, limit int) ([]model.User, int64, error)
}

type UserService struct {
	UserRepo UserRepo
	Storage  *StorageService
}

func NewUserService(userRepo UserRepo, storage *StorageService) *UserService {
	return &UserService{UserRepo: userRepo, Storage: storage}
}

// UpdateProfile changes the display name shown in chat.
func (s *UserService) UpdateProfile(userID uint, displayName string) (*model.User, error) {
	displayName = strings.TrimSpace(util.Sanitize(displayName))
	if displayName == "" {
		return nil, errors.New("display name cannot be empty")
	}
	if len([]rune(displayName)) > 100 {
		return nil, errors.New("display name is too long")
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	user.DisplayName = displayName
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetAvatar stores the uploaded image and records its URL on the user.
func (s *UserService) SetAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (*model.User, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" && ext != ".webp" {
		return nil, errors.New("unsupported avatar format")
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	filename := "avatars/" + time.Now().Format("20060102150405") + "_" + model.GenerateUUID() + ext
	url, err := s.Storage.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	user.Avatar = url
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Search is the admin user listing.
func (s *UserService) Search(search string, page, limit int) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.UserRepo.Search(search, page, limit)
}

// SetBanned blocks or unblocks a user from logging in and chatting.
func (s *UserService) SetBanned(userID uint, banned bool) error {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return util.ErrUserNotFound
	}
	return s.UserRepo.SetBanned(userID, banned)
}

// SetMuted silences a user in chat while leaving the rest of the app
// usable.
func (s *UserService) SetMuted(userID uint, muted bool) error {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return util.ErrUserNotFound
	}
	return s.UserRepo.SetMuted(userID, muted)
}
