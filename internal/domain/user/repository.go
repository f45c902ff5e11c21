package user

import "context"

type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ListAdmins returns every user with the admin role, the notification
	// fan-out audience for new tickets.
	ListAdmins(ctx context.Context) ([]*User, error)
}
