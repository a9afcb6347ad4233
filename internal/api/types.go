package api

import "time"

// ProcessMessageRequest is the body of POST /messages/process.
type ProcessMessageRequest struct {
	UserID  string `json:"user_id"`
	Content string `json:"content"`
}

// ProcessMessageResponse carries the backend's risk analysis of a message.
type ProcessMessageResponse struct {
	MessageID      string  `json:"message_id"`
	RiskLevel      string  `json:"risk_level"` // low, medium, high, critical
	RiskScore      float64 `json:"risk_score"`
	CrisisDetected bool    `json:"crisis_detected"`
	Response       string  `json:"response,omitempty"`
}

// RiskProfileResponse is the body of GET /alerts/risk-profile/{id}.
type RiskProfileResponse struct {
	UserID       string    `json:"user_id"`
	RiskLevel    string    `json:"risk_level"`
	AlertCount   int       `json:"alert_count"`
	LastAssessed time.Time `json:"last_assessed"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role,omitempty"` // student, admin
}

// AuthResponse is returned by both auth endpoints.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	FullName    string `json:"full_name,omitempty"`
}

// CommunityPost is one entry in the community feed.
type CommunityPost struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest is the body of POST /community/posts.
type CreatePostRequest struct {
	Content   string `json:"content"`
	Anonymous bool   `json:"anonymous,omitempty"`
}
