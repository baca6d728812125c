package services

import (
	"fmt"
	"iter"
	"reflect"
	"sort"

	"github.com/ivergara/skym/internal/core/domain"
)

// nullTypeName is reported for an untyped nil item or items value.
const nullTypeName = "<nil>"

// Normalizer turns caller-supplied collections into validated candidates.
// It accepts slices, arrays, maps (as key sets), receive channels,
// range-over-func sequences and domain.Source values. Every element must be
// a string; the first element that is not aborts normalization.
type Normalizer struct{}

// NewNormalizer creates a new normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize validates items and returns them as candidates in iteration order.
// Lazy producers are consumed exactly once and told to stop at the first
// invalid element. The input is never modified.
func (n *Normalizer) Normalize(items any) ([]domain.Candidate, error) {
	switch v := items.(type) {
	case nil:
		return nil, domain.NewNotIterableError(nullTypeName)
	case domain.Source:
		return fromSource(v), nil
	case []string:
		return domain.NewCandidates(v), nil
	case []any:
		return fromAnySlice(v)
	case iter.Seq[string]:
		return fromStringSeq(v), nil
	case iter.Seq[any]:
		return fromAnySeq(v)
	}

	rv := reflect.ValueOf(items)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return fromIndexed(rv)
	case reflect.Map:
		return fromMapKeys(rv)
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir == 0 {
			return nil, domain.NewNotIterableError(typeName(items))
		}
		return fromChan(rv)
	case reflect.Func:
		if !isSeqFunc(rv.Type()) {
			return nil, domain.NewNotIterableError(typeName(items))
		}
		return fromSeqFunc(rv)
	default:
		return nil, domain.NewNotIterableError(typeName(items))
	}
}

// itemText validates a single element.
func itemText(item any, pos int) (string, error) {
	if s, ok := item.(string); ok {
		return s, nil
	}
	if item == nil {
		return "", domain.NewNullItemError(nullTypeName, pos)
	}

	rv := reflect.ValueOf(item)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		if rv.IsNil() {
			return "", domain.NewNullItemError(typeName(item), pos)
		}
	}
	return "", domain.NewNonStringItemError(typeName(item), pos)
}

// valueText validates an element obtained through reflection.
func valueText(v reflect.Value, pos int) (string, error) {
	if v.Kind() == reflect.String {
		return v.String(), nil
	}
	if !v.CanInterface() {
		return "", domain.NewNonStringItemError(v.Type().String(), pos)
	}
	return itemText(v.Interface(), pos)
}

func typeName(v any) string {
	if v == nil {
		return nullTypeName
	}
	return fmt.Sprintf("%T", v)
}

func fromSource(src domain.Source) []domain.Candidate {
	n := src.Len()
	candidates := make([]domain.Candidate, n)
	for i := 0; i < n; i++ {
		candidates[i] = domain.Candidate{Text: src.String(i), Index: i}
	}
	return candidates
}

func fromAnySlice(items []any) ([]domain.Candidate, error) {
	candidates := make([]domain.Candidate, 0, len(items))
	for i, item := range items {
		text, err := itemText(item, i)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, domain.Candidate{Text: text, Index: i})
	}
	return candidates, nil
}

func fromStringSeq(seq iter.Seq[string]) []domain.Candidate {
	candidates := make([]domain.Candidate, 0)
	if seq == nil {
		return candidates
	}
	for text := range seq {
		candidates = append(candidates, domain.Candidate{Text: text, Index: len(candidates)})
	}
	return candidates
}

func fromAnySeq(seq iter.Seq[any]) ([]domain.Candidate, error) {
	candidates := make([]domain.Candidate, 0)
	if seq == nil {
		return candidates, nil
	}
	for item := range seq {
		text, err := itemText(item, len(candidates))
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, domain.Candidate{Text: text, Index: len(candidates)})
	}
	return candidates, nil
}

func fromIndexed(rv reflect.Value) ([]domain.Candidate, error) {
	n := rv.Len()
	candidates := make([]domain.Candidate, 0, n)
	for i := 0; i < n; i++ {
		text, err := valueText(rv.Index(i), i)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, domain.Candidate{Text: text, Index: i})
	}
	return candidates, nil
}

// fromMapKeys treats a map as a set of its keys. Go maps have no order,
// so keys are visited sorted by their formatted value.
func fromMapKeys(rv reflect.Value) ([]domain.Candidate, error) {
	keys := rv.MapKeys()
	sort.SliceStable(keys, func(i, j int) bool {
		return formatValue(keys[i]) < formatValue(keys[j])
	})

	candidates := make([]domain.Candidate, 0, len(keys))
	for i, key := range keys {
		text, err := valueText(key, i)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, domain.Candidate{Text: text, Index: i})
	}
	return candidates, nil
}

func formatValue(v reflect.Value) string {
	if v.CanInterface() {
		return fmt.Sprint(v.Interface())
	}
	return v.String()
}

// fromChan receives until the channel is closed. A nil channel is empty.
func fromChan(rv reflect.Value) ([]domain.Candidate, error) {
	candidates := make([]domain.Candidate, 0)
	if rv.IsNil() {
		return candidates, nil
	}
	for {
		item, ok := rv.Recv()
		if !ok {
			return candidates, nil
		}
		text, err := valueText(item, len(candidates))
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, domain.Candidate{Text: text, Index: len(candidates)})
	}
}

// isSeqFunc reports whether t has the shape func(yield func(T) bool).
func isSeqFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}

// fromSeqFunc drives a range-over-func producer of any element type.
// A nil producer is empty.
func fromSeqFunc(rv reflect.Value) ([]domain.Candidate, error) {
	candidates := make([]domain.Candidate, 0)
	if rv.IsNil() {
		return candidates, nil
	}

	var firstErr error
	yieldType := rv.Type().In(0)
	keepGoing := reflect.ValueOf(true).Convert(yieldType.Out(0))
	stop := reflect.ValueOf(false).Convert(yieldType.Out(0))

	yield := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
		if firstErr != nil {
			return []reflect.Value{stop}
		}
		text, err := valueText(args[0], len(candidates))
		if err != nil {
			firstErr = err
			return []reflect.Value{stop}
		}
		candidates = append(candidates, domain.Candidate{Text: text, Index: len(candidates)})
		return []reflect.Value{keepGoing}
	})
	rv.Call([]reflect.Value{yield})

	if firstErr != nil {
		return nil, firstErr
	}
	return candidates, nil
}
