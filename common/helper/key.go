package helper

import (
	"fmt"

	"github.com/qa-demo/casegen/common/random"
)

const (
	RequestIdKey = "X-Request-Id"
	// GeneratorModeKey advertises the generation mode to clients probing the API.
	GeneratorModeKey = "X-Generator-Mode"
)

func GenRequestID() string {
	return GetTimeString() + random.GetUUID()[:8]
}

func MessageWithRequestId(message string, id string) string {
	return fmt.Sprintf("%s (request id: %s)", message, id)
}
