package user

import "github.com/quizdeck/admin-core/internal/api"

type UserContainer struct {
	Directory *Directory
	Profile   *Profile
}

func NewUserContainer(client *api.Client) *UserContainer {
	return &UserContainer{
		Directory: NewDirectory(client),
		Profile:   NewProfile(client),
	}
}
