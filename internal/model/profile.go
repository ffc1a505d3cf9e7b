package model

// 브라우저 localStorage에 있던 사용자 프로필을 서버 측으로 이동한 모델
// 배너 닫힘 플래그는 클라이언트에 남는다

// ProfileRequest - 프로필 수정 요청
type ProfileRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// ProfileResponse - 프로필 조회/수정 응답
// Initials는 저장하지 않고 displayName에서 파생
type ProfileResponse struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Initials    string `json:"initials"`
}
