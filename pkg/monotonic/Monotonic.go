package monotonic

import "fmt"

import "github.com/sirgallo/durability/pkg/dmerror"


//=========================================== Monotonic Counters


func NewStrict [T Orderable](initial T) Strict[T] {
	return Strict[T]{ value: initial }
}

func NewWeak [T Orderable](initial T) Weak[T] {
	return Weak[T]{ value: initial }
}

/*
	Set on a strict counter
		the incoming value must be strictly greater than the stored value
*/

func (m *Strict[T]) Set(next T) error {
	if next <= m.value {
		return fmt.Errorf("%w: strict regression %v -> %v", dmerror.ErrMonotonicViolation, m.value, next)
	}

	m.value = next
	return nil
}

func (m *Strict[T]) Get() T {
	return m.value
}

/*
	Set on a weak counter
		the incoming value may equal the stored value, a lower value is a violation
*/

func (m *Weak[T]) Set(next T) error {
	if next < m.value {
		return fmt.Errorf("%w: weak regression %v -> %v", dmerror.ErrMonotonicViolation, m.value, next)
	}

	m.value = next
	return nil
}

func (m *Weak[T]) Get() T {
	return m.value
}
