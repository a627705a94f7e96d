package update_cms_component

import (
	"context"
	"encoding/json"
)

type CMSService interface {
	SaveComponent(ctx context.Context, name string, content json.RawMessage) (json.RawMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
