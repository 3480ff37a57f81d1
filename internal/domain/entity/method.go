package entity

import "fmt"

// Method способ детекции бутылок
type Method string

const (
	MethodHough   Method = "hough"   // преобразование Хафа для окружностей
	MethodContour Method = "contour" // анализ контуров
	MethodBoth    Method = "both"    // оба способа, берём лучший результат
)

// ParseMethod разбирает название метода из строки
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodHough, MethodContour, MethodBoth:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown method %q", s)
}

// MethodFromIndex переводит позицию ползунка (0, 1, 2) в метод
func MethodFromIndex(i int) Method {
	switch i {
	case 1:
		return MethodContour
	case 2:
		return MethodBoth
	}
	return MethodHough
}

// Index возвращает позицию метода для ползунка
func (m Method) Index() int {
	switch m {
	case MethodContour:
		return 1
	case MethodBoth:
		return 2
	}
	return 0
}
