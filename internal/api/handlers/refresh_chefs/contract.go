package refresh_chefs

import "context"

type DirectoryService interface {
	Refresh(ctx context.Context, sessionToken string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
