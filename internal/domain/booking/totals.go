package booking

import "github.com/NavalhaDigital/booking-api/internal/dto"

// Totals agrega preço e duração dos itens (preço * quantidade).
func Totals(items []dto.BookingServiceDTO) (price float64, durationMinutes int) {
	for _, it := range items {
		price += it.Price * float64(it.Quantity)
		durationMinutes += it.DurationMinutes * it.Quantity
	}
	return price, durationMinutes
}

// MergeItems soma quantidades de serviços repetidos, preservando a
// ordem da primeira ocorrência. Quantidade ausente ou inválida vira 1.
func MergeItems(items []LineItem) []LineItem {
	merged := make([]LineItem, 0, len(items))
	index := make(map[int]int, len(items))

	for _, it := range items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		if i, ok := index[it.ServiceID]; ok {
			merged[i].Quantity += qty
			continue
		}
		index[it.ServiceID] = len(merged)
		merged = append(merged, LineItem{ServiceID: it.ServiceID, Quantity: qty})
	}

	return merged
}
