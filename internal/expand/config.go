package expand

// Config задаёт параметры генерации. Нулевое значение непригодно;
// начинать следует с DefaultConfig.
type Config struct {
	// Attribute — имя маркерного атрибута без '@'.
	Attribute string
	// LockType — тип примитива взаимного исключения.
	LockType string
	// Unchecked — квалификатор, отключающий проверки конкурентности
	// на backing-хранилище.
	Unchecked string
	// Indent — одна ступень отступа в сгенерированном блоке.
	Indent string
}

// DefaultConfig returns the stock configuration: @ThreadSafe, NSLock,
// nonisolated(unsafe), four-space indentation.
func DefaultConfig() Config {
	return Config{
		Attribute: "ThreadSafe",
		LockType:  "NSLock",
		Unchecked: "nonisolated(unsafe)",
		Indent:    "    ",
	}
}
