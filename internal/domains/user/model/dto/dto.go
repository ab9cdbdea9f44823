package dto

import (
	"github.com/google/uuid"

	"courtside/internal/domains/user/model"
	"courtside/shared"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	gModel "courtside/shared/model"
	"courtside/shared/timezone"
)

type CreateUserRequest struct {
	Email    string  `json:"email"               validate:"required,email"`
	Password string  `json:"password"            validate:"required,min=8"`
	Role     string  `json:"role"                validate:"omitempty,oneof=user admin superadmin"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
}

func (r *CreateUserRequest) ToModel(createdBy string, hashedPassword string) model.User {
	role := r.Role
	if role == constant.Empty {
		role = constant.RoleUser
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Role:     role,
		FullName: r.FullName,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type UpdateUserRequest struct {
	Role     *string `db:"role"      json:"role,omitempty"      validate:"omitempty,oneof=user admin superadmin"`
	FullName *string `db:"full_name" json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	Active   *bool   `db:"active"    json:"active,omitempty"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FullName  *string `json:"full_name,omitempty"`
	LastLogin string  `json:"last_login,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)

	if model.LastLogin != nil {
		r.LastLogin = timezone.Format(*model.LastLogin, constant.DateFormat)
	}
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
