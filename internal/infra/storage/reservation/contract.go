package reservation

import (
	"github.com/m04kA/CWS-ReservationService/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics:
// репозиторий одинаково работает с *sql.DB, *dbmetrics.DB и транзакцией
type DBExecutor = dbmetrics.DBExecutor
