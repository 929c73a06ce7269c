// Package ast определяет синтаксическое дерево поверхности объявлений.
//
// Дерево намеренно мелкое: экспандеру нужны только объявления верхнего
// уровня и тел типов — атрибуты, модификаторы, имя, аннотация типа и
// инициализатор. Тела функций и выражения хранятся как спаны исходного
// текста и переносятся в сгенерированный код дословно.
package ast
