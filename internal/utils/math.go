// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// AngleBetween возвращает кратчайшую разницу to - from в диапазоне [-π, π]
func AngleBetween(from, to float64) float64 {
	return NormalizeAngle(to - from)
}

// angleEpsilon гасит ошибку округления при пошаговом повороте
const angleEpsilon = 1e-9

// RotateToward поворачивает from к to не больше чем на step радиан.
// Второе значение сообщает, достигнут ли целевой угол.
func RotateToward(from, to, step float64) (float64, bool) {
	diff := AngleBetween(from, to)
	if math.Abs(diff) <= step+angleEpsilon {
		return NormalizeAngle(to), true
	}
	if diff < 0 {
		return NormalizeAngle(from - step), false
	}
	return NormalizeAngle(from + step), false
}

// Rotate поворачивает вектор (x, y) на angle радиан
func Rotate(x, y, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}
