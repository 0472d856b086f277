package booking

import "github.com/jspark-dev/JSM-ReservationService/pkg/txmanager"

// Переиспользуем интерфейсы из txmanager для работы с БД
type DBExecutor = txmanager.DBExecutor
type TxExecutor = txmanager.TxExecutor
