// Package dashboard builds per-role read models over the portal API plus the
// device-local store. A view is selected once per session from the account
// role; role switching means logging in again.
package dashboard

import (
	"context"
	"fmt"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/client"
	"github.com/tumelo/reportal/internal/client/store"
)

// View is one role's dashboard. Load fetches everything the view shows;
// Summary renders a plain-text overview for the CLI.
type View interface {
	Role() models.Role
	Load(ctx context.Context) error
	Summary() string
}

// ForUser selects the dashboard for the account's role.
func ForUser(user models.User, api *client.Client, local *store.Store) (View, error) {
	switch user.Role {
	case models.RoleStudent:
		return NewStudentView(user, api, local), nil
	case models.RoleLecturer:
		return NewLecturerView(user, api), nil
	case models.RolePRL:
		return NewPRLView(user, api, local), nil
	case models.RolePL:
		return NewPLView(user, api, local), nil
	default:
		return nil, fmt.Errorf("no dashboard for role %q", user.Role)
	}
}
