// Package inventory contiene el motor de ajustes de stock (servicio de dominio puro).
package inventory

import (
	"github.com/jhoicas/stocksync-api/internal/domain"
	"github.com/jhoicas/stocksync-api/internal/domain/entity"
)

// Apply calcula la nueva cantidad de un producto a partir de la cantidad actual,
// el tipo de movimiento y la cantidad solicitada, y devuelve el borrador del
// movimiento a registrar (sin ID, producto ni timestamps; los pone el caller).
//
//	IN:         nueva = actual + solicitada
//	OUT:        nueva = max(0, actual - solicitada), el stock nunca queda negativo
//	ADJUSTMENT: nueva = solicitada, valor absoluto y no delta
//
// El movimiento registra siempre la cantidad solicitada tal cual, incluso cuando
// una salida queda recortada en cero. Validar solicitada >= 1 (IN/OUT) o >= 0
// (ADJUSTMENT) es responsabilidad del caller.
func Apply(current int, movementType string, requested int) (int, entity.StockMovement, error) {
	var newQuantity int
	switch movementType {
	case entity.MovementTypeIn:
		newQuantity = current + requested
	case entity.MovementTypeOut:
		newQuantity = current - requested
		if newQuantity < 0 {
			newQuantity = 0
		}
	case entity.MovementTypeAdjustment:
		newQuantity = requested
	default:
		return 0, entity.StockMovement{}, domain.ErrInvalidInput
	}

	draft := entity.StockMovement{
		Type:     movementType,
		Quantity: requested,
	}
	return newQuantity, draft, nil
}
