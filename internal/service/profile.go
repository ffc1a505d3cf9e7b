// 사용자 프로필 서비스
//
// 표시 이름/이메일은 서버에 저장하고, 아바타 이니셜은 저장하지 않고
// 표시 이름에서 매번 파생한다.

package service

import (
	"context"
	"strings"

	"github.com/mule-triage/backend/internal/model"
)

// profileRepo - 프로필 저장소 (db.Postgres가 구현)
type profileRepo interface {
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	UpdateUserProfile(ctx context.Context, id int64, displayName, email string) (*model.User, error)
}

// ProfileService 구조체 정의
type ProfileService struct {
	repo profileRepo
}

// ProfileService 객체 생성
func NewProfileService(repo profileRepo) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get - 프로필 조회
func (s *ProfileService) Get(ctx context.Context, userID int64) (*model.ProfileResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(user), nil
}

// Update - 프로필 수정
// 표시 이름이 비면 로그인 ID를 쓰도록 저장 전에 정리한다
func (s *ProfileService) Update(ctx context.Context, userID int64, req model.ProfileRequest) (*model.ProfileResponse, error) {
	displayName := strings.TrimSpace(req.DisplayName)
	email := strings.TrimSpace(req.Email)

	if len(displayName) > 100 || len(email) > 254 {
		return nil, ErrInvalidInput
	}

	user, err := s.repo.UpdateUserProfile(ctx, userID, displayName, email)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(user), nil
}

func toProfileResponse(user *model.User) *model.ProfileResponse {
	displayName := user.DisplayName
	if displayName == "" {
		displayName = user.LoginID
	}
	return &model.ProfileResponse{
		DisplayName: displayName,
		Email:       user.Email,
		Initials:    Initials(displayName),
	}
}

// Initials - 표시 이름에서 아바타 이니셜 파생
//
// 두 단어 이상이면 앞 두 단어의 첫 글자, 한 단어면 앞 두 글자.
// 빈 이름은 "??" - 저장된 값이 아니라 파생값이므로 그대로 노출해도 무해
func Initials(displayName string) string {
	parts := strings.Fields(displayName)
	if len(parts) == 0 {
		return "??"
	}

	if len(parts) == 1 {
		runes := []rune(parts[0])
		if len(runes) > 2 {
			runes = runes[:2]
		}
		return strings.ToUpper(string(runes))
	}

	first := []rune(parts[0])
	second := []rune(parts[1])
	return strings.ToUpper(string(first[0]) + string(second[0]))
}
