package entity

// Params параметры детекции, подбираются через утилиту tune
type Params struct {
	MinRadius   int     // минимальный радиус окружности в пикселях
	MaxRadius   int     // максимальный радиус окружности в пикселях
	MinDistance float64 // минимальное расстояние между центрами
	Param1      float64 // верхний порог детектора границ Кэнни
	Param2      float64 // порог аккумулятора Хафа
	Method      Method  // выбранный способ детекции
}

// DefaultParams возвращает параметры по умолчанию
func DefaultParams() Params {
	return Params{
		MinRadius:   15,
		MaxRadius:   60,
		MinDistance: 20,
		Param1:      30,
		Param2:      30,
		Method:      MethodBoth,
	}
}
