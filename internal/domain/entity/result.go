package entity

// FrameResult хранит итог детекции одного кадра.
type FrameResult struct {
	Method  Method   // метод, давший итоговые окружности
	Circles []Circle // список найденных бутылок
}

// Count возвращает количество найденных бутылок
func (r *FrameResult) Count() int {
	return len(r.Circles)
}

// EmptyResult возвращает пустой результат для кадров с ошибкой
func EmptyResult(method Method) *FrameResult {
	return &FrameResult{Method: method, Circles: []Circle{}}
}

// Reconcile выбирает лучший из двух результатов по количеству находок.
// При равенстве предпочтение отдаётся методу Хафа.
func Reconcile(hough, contour []Circle) *FrameResult {
	if len(hough) >= len(contour) {
		return &FrameResult{Method: MethodHough, Circles: hough}
	}
	return &FrameResult{Method: MethodContour, Circles: contour}
}
