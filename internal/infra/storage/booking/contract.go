package booking

import (
	"github.com/m04kA/CRS-BookingService/pkg/dbmetrics"
)

// DBExecutor интерфейс исполнителя запросов (см. dbmetrics)
// Реализуется *sql.DB, *dbmetrics.DB и транзакциями из контекста
type DBExecutor = dbmetrics.DBExecutor
