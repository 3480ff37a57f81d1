package port

import (
	"context"

	"bottle-counter/internal/domain/entity"
)

// ResultRepository интерфейс хранилища результатов обработки видео
type ResultRepository interface {
	// BeginRun регистрирует новый прогон и возвращает его ID
	BeginRun(ctx context.Context, source string) (int64, error)

	// SaveFrame сохраняет результат детекции одного кадра
	SaveFrame(ctx context.Context, runID int64, frame int, result *entity.FrameResult) error

	// Close освобождает ресурсы хранилища
	Close() error
}
