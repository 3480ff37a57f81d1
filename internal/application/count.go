package app

import (
	"context"
	"errors"
	"log"

	"bottle-counter/internal/domain/entity"
	"bottle-counter/internal/domain/port"
)

type CountService struct {
	users    *UserService
	detector port.BottleDetector
}

// CountOutput содержит результат подсчёта и картинку с обведёнными бутылками.
type CountOutput struct {
	Result    *entity.FrameResult
	Annotated []byte
}

// NewCountService создаёт сервис, который управляет подсчётом бутылок.
func NewCountService(users *UserService, detector port.BottleDetector) *CountService {
	return &CountService{
		users:    users,
		detector: detector,
	}
}

// CountFrame считает бутылки на одном кадре выбранным методом.
// Ошибки детекции не фатальны: кадр с ошибкой даёт нулевой результат.
func (s *CountService) CountFrame(ctx context.Context, imageData []byte, params entity.Params) *entity.FrameResult {
	if s.detector == nil {
		return entity.EmptyResult(entity.MethodHough)
	}

	switch params.Method {
	case entity.MethodHough:
		return &entity.FrameResult{Method: entity.MethodHough, Circles: s.detectHough(ctx, imageData, params)}
	case entity.MethodContour:
		return &entity.FrameResult{Method: entity.MethodContour, Circles: s.detectContour(ctx, imageData, params)}
	}

	// Оба метода: оставляем тот, что нашёл больше, при равенстве — Хаф.
	hough := s.detectHough(ctx, imageData, params)
	contour := s.detectContour(ctx, imageData, params)
	return entity.Reconcile(hough, contour)
}

// Process считает бутылки и возвращает результат с аннотированным кадром.
func (s *CountService) Process(ctx context.Context, imageData []byte, params entity.Params) (*CountOutput, error) {
	if s.detector == nil {
		return nil, errors.New("detector is not configured")
	}

	result := s.CountFrame(ctx, imageData, params)

	annotated, err := s.detector.Annotate(imageData, result)
	if err != nil {
		return nil, err
	}

	return &CountOutput{Result: result, Annotated: annotated}, nil
}

// AcceptPhoto принимает фото от пользователя и возвращает его в главное меню.
func (s *CountService) AcceptPhoto(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.users.SetState(ctx, userID, chatID, entity.StateMainMenu)
}

func (s *CountService) detectHough(ctx context.Context, imageData []byte, params entity.Params) []entity.Circle {
	circles, err := s.detector.DetectHough(ctx, imageData, params)
	if err != nil {
		log.Printf("Hough detection failed: %v", err)
		return []entity.Circle{}
	}
	if circles == nil {
		circles = []entity.Circle{}
	}
	return circles
}

func (s *CountService) detectContour(ctx context.Context, imageData []byte, params entity.Params) []entity.Circle {
	circles, err := s.detector.DetectContour(ctx, imageData, params)
	if err != nil {
		log.Printf("Contour detection failed: %v", err)
		return []entity.Circle{}
	}
	if circles == nil {
		circles = []entity.Circle{}
	}
	return circles
}
