package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-template-studio/internal/facades"
	"github.com/sbilibin2017/gw-template-studio/internal/models"
	"github.com/sbilibin2017/gw-template-studio/internal/repositories"
)

// ProfileService serves the current user's profile.
type ProfileService struct {
	users    UserStore
	images   ImageStore
	maxBytes int64
}

func NewProfileService(users UserStore, images ImageStore, maxBytes int64) *ProfileService {
	return &ProfileService{users: users, images: images, maxBytes: maxBytes}
}

// Me returns the user with id userID.
func (s *ProfileService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateAvatar stores image and sets it as the profile picture.
func (s *ProfileService) UpdateAvatar(ctx context.Context, userID uuid.UUID, image []byte) (*models.User, error) {
	contentType, err := DetectImageType(image, s.maxBytes)
	if err != nil {
		return nil, err
	}

	url, err := s.images.Save(ctx, facades.KindAvatar, image, contentType)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateProfilePicture(ctx, userID, url); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.Me(ctx, userID)
}
