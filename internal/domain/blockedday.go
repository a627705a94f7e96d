package domain

import "time"

// BlockedDay день, закрытый для записи (dias_bloqueados)
// StoreID = nil означает блокировку для всех магазинов сразу
type BlockedDay struct {
	ID      int64
	Date    time.Time
	StoreID *int64
	Reason  *string
}

// IsGlobal возвращает true, если день заблокирован для всех магазинов
func (d *BlockedDay) IsGlobal() bool {
	return d.StoreID == nil
}
