package entity

// Rating результат оценки номера
type Rating struct {
	Score       float64 // 0.0 - 100.0
	Description string  // Например: "AABB (6688)", "Ladder (1234)"
	IsLucky     bool    // Флаг, что номер имеет ценность
}
