package ports

import "context"

// BackgroundWorker — фоновый компонент приложения с жизненным циклом Run/Close.
type BackgroundWorker interface {
	Run(ctx context.Context) error
	Close() error
}
