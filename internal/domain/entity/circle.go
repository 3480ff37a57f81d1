package entity

import "math"

// Circle представляет одну найденную бутылку (крышку) на кадре
type Circle struct {
	X      int     // координата X центра
	Y      int     // координата Y центра
	Radius float64 // радиус в пикселях
}

// Area возвращает площадь круга в пикселях
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}
