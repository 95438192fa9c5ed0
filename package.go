package sdkgen

import (
	"context"
)

type Span interface {
	Context() context.Context
	Error(message string, err error) error
	Variable(key string, value any)
	End()
}
