package storage

import (
	"context"

	"github.com/gamingleague/tournaments-web/internal/model"
)

// Store persists web sessions. This is the only state the application owns;
// every domain read and write goes to the remote backend instead.
type Store interface {
	SaveSession(ctx context.Context, sess *model.Session) error
	GetSession(ctx context.Context, token string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error
}
