package get_cms_component

import (
	"context"
	"encoding/json"
)

type CMSService interface {
	GetComponent(ctx context.Context, name string) (json.RawMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
