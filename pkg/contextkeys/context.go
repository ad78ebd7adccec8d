package contextkeys

// Кастомный тип ключа, чтобы избежать коллизий в context
type contextKey string

// DBContextKey - ключ, по которому в context хранится *gorm.DB
// (пул соединений или транзакция в тестах)
const DBContextKey = contextKey("db")
