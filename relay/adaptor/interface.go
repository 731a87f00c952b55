package adaptor

import (
	"context"

	"github.com/qa-demo/casegen/relay/model"
)

// Adaptor sends a chat prompt to an upstream provider and returns the raw
// content of the first choice. Parsing that content is the caller's job.
type Adaptor interface {
	Call(ctx context.Context, messages []model.Message, modelName string) (string, error)
	GetChannelName() string
}
