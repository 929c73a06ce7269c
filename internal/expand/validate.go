package expand

import (
	"locksmith/internal/diag"
)

// Failure — теговое значение причины отказа. Сообщения фиксированы:
// их текст входит в контракт инструмента и сверяется побайтово.
type Failure uint8

const (
	FailureNone Failure = iota
	NotAVariable
	MissingTypeAnnotation
	MissingInitializer
)

// Message returns the fixed user-facing diagnostic text.
func (f Failure) Message() string {
	switch f {
	case NotAVariable:
		return "@ThreadSafe can only be used with variables."
	case MissingTypeAnnotation:
		return "The variable must have an explicit type annotation after ':'."
	case MissingInitializer:
		return "The variable must have an initial value."
	default:
		return ""
	}
}

// Code maps the failure onto its diagnostic code.
func (f Failure) Code() diag.Code {
	switch f {
	case NotAVariable:
		return diag.ExpNotAVariable
	case MissingTypeAnnotation:
		return diag.ExpMissingTypeAnnotation
	case MissingInitializer:
		return diag.ExpMissingInitializer
	default:
		return diag.ExpInfo
	}
}

// Binding — валидированная тройка. Сконструировать её можно только
// через успешный Validate; все три поля непусты.
type Binding struct {
	Name string
	Type string
	Init string
}

// Validate applies the eligibility checks in fixed order, first failing
// check wins:
//
//  1. объявление должно быть var, не let и не что-то ещё;
//  2. тип должен быть указан явно (вывод из инициализатора не делаем:
//     без аннотации надёжно отделить "тип" от "значения" нельзя);
//  3. инициализатор должен присутствовать.
//
// Частичного успеха нет: при любом отказе извлечённые поля отбрасываются.
func Validate(ins Inspection) (Binding, Failure) {
	if !ins.IsVariable {
		return Binding{}, NotAVariable
	}
	if !ins.HasType {
		return Binding{}, MissingTypeAnnotation
	}
	if !ins.HasInit {
		return Binding{}, MissingInitializer
	}
	return Binding{Name: ins.Name, Type: ins.Type, Init: ins.Init}, FailureNone
}
