package appointment

import (
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
