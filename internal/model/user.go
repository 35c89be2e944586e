package model

// 用户角色
const (
	UserRoleArtisan = "artisan"
	UserRoleAdmin   = "admin"
)

// 用户审核状态
const (
	UserStatusPending  = "pending"
	UserStatusVerified = "verified"
	UserStatusRejected = "rejected"
)

// User 平台用户（工匠 / 管理员）
// 主键为 ID，邮箱通过二级索引反查
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// IsAdmin 是否管理员
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// IsArtisan 是否工匠
func (u *User) IsArtisan() bool {
	return u.Role == UserRoleArtisan
}

// ValidUserRole 角色是否合法
func ValidUserRole(role string) bool {
	return role == UserRoleArtisan || role == UserRoleAdmin
}
