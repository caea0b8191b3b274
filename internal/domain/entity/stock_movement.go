package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn         = "IN"         // entrada: suma la cantidad
	MovementTypeOut        = "OUT"        // salida: resta la cantidad, con piso en 0
	MovementTypeAdjustment = "ADJUSTMENT" // ajuste manual: fija el valor absoluto
)

// ValidMovementType verifica que el tipo sea uno de los conocidos.
func ValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut || t == MovementTypeAdjustment
}

// StockMovement es un registro inmutable del log de movimientos (append-only).
// Para IN/OUT Quantity es la magnitud solicitada del cambio; para ADJUSTMENT es
// el valor absoluto resultante. Se registra tal cual lo pidió el usuario, aun
// cuando una salida quede recortada en cero.
type StockMovement struct {
	ID        string
	ProductID string // FK débil a products
	Type      string // IN, OUT, ADJUSTMENT
	Quantity  int
	Reason    string
	Notes     string
	CreatedAt time.Time
}

// StockMovementWithProduct movimiento con los datos mínimos del producto
// resueltos por join en lectura.
type StockMovementWithProduct struct {
	StockMovement
	ProductName string
	ProductSKU  string
}
