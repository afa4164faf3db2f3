package state

import (
	"github.com/sidereusnuntius/goblog/internal/config"
	"github.com/sidereusnuntius/goblog/internal/db"
	"github.com/sidereusnuntius/goblog/internal/events"
	"github.com/sidereusnuntius/goblog/internal/queue"
	"github.com/sidereusnuntius/goblog/internal/storage"
)

// State holds the dependencies shared by the services.
type State struct {
	DB      db.DB
	Config  config.Configuration
	Storage storage.Storage
	Queue   queue.Queue
	Events  events.Publisher
}
