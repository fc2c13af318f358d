package model

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateActivityRequest struct {
	Date        string  `json:"date"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
}

// UpdateActivityPatch carries only the fields the client sent; nil means
// "leave unchanged". An all-nil patch is a client error.
type UpdateActivityPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
}

type DeleteActivitiesRequest struct {
	IDs []int `json:"ids"`
}

type AdminCreateActivityRequest struct {
	UserID int `json:"userId"`
	CreateActivityRequest
}

type AdminUpdateActivityRequest struct {
	ID int `json:"id"`
	UpdateActivityPatch
}

type CreateUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"roleId"`
}

type ChangeRoleRequest struct {
	UserID int `json:"userId"`
	RoleID int `json:"roleId"`
}

type DeleteUserRequest struct {
	UserID int `json:"userId"`
}
