package port

import (
	"context"

	"bottle-counter/internal/domain/entity"
)

// BottleDetector интерфейс детектора бутылок
type BottleDetector interface {
	// DetectHough ищет бутылки преобразованием Хафа для окружностей
	DetectHough(ctx context.Context, imageData []byte, params entity.Params) ([]entity.Circle, error)

	// DetectContour ищет бутылки анализом контуров
	DetectContour(ctx context.Context, imageData []byte, params entity.Params) ([]entity.Circle, error)

	// Annotate создаёт изображение с обведёнными бутылками и счётчиком
	Annotate(imageData []byte, result *entity.FrameResult) ([]byte, error)
}
