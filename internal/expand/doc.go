// Package expand реализует само преобразование: аннотированное
// объявление переменной переписывается в computed-property фасад с
// блокировкой и приватное backing-хранилище (value, lock).
//
// Конвейер одной экспансии: Inspect -> Validate -> Synthesize либо
// одна диагностика на спане атрибута. Никогда и то и другое сразу:
// при любой ошибке валидации исходное объявление не меняется вовсе.
//
// Каждое сгенерированное хранилище живёт со своим собственным замком;
// порядок захвата замков разных свойств остаётся на совести вызывающего
// кода. Канонического упорядочивания инструмент не генерирует: кто
// берёт два замка в разном порядке, тот может попасть в deadlock.
package expand
