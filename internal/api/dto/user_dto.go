package dto

// CreateUserRequest 通用用户创建
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=artisan admin"`
}

// DeleteManyRequest 批量删除
type DeleteManyRequest struct {
	IDs []string `json:"ids"`
}

// DeleteUserResponse 删除结果
type DeleteUserResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// DeleteManyResponse 批量删除结果
type DeleteManyResponse struct {
	DeletedCount int      `json:"deletedCount"`
	IDs          []string `json:"ids"`
}
