package services

import (
	"hotel-admin/config"
	"hotel-admin/models"
)

const userPageSize = 5

// UserService binds the generic list to the users collection. The user
// screen is the only paginated one.
type UserService struct {
	*List[models.User]
}

func NewUserService(store config.Store) *UserService {
	return &UserService{
		List: NewList(store, ListConfig[models.User]{
			Collection: "users",
			PageSize:   userPageSize,
			Required:   []string{"name", "email"},
			Matches: func(u models.User, q string) bool {
				return ContainsFold(u.Name, q) || ContainsFold(u.Email, q)
			},
		}),
	}
}
