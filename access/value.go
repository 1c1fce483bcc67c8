//
// Copyright 2021 the FLPrivacy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package access

import "fmt"

// Kind enumerates the shapes a Value or Sensitivity can take.
type Kind int

const (
	// ScalarKind is a single float64.
	ScalarKind Kind = iota
	// VectorKind is a slice of float64 entries.
	VectorKind
	// KeyedKind is a mapping from string keys to float64 slices.
	KeyedKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case VectorKind:
		return "vector"
	case KeyedKind:
		return "keyed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a tagged union over the result shapes a query can produce: a
// scalar, a vector, or a mapping from keys to vectors. The zero Value is
// the scalar 0.
type Value struct {
	kind   Kind
	scalar float64
	vector []float64
	keyed  map[string][]float64
}

// Scalar returns a scalar Value.
func Scalar(v float64) Value {
	return Value{kind: ScalarKind, scalar: v}
}

// Vector returns a vector Value wrapping v. The slice is not copied.
func Vector(v []float64) Value {
	return Value{kind: VectorKind, vector: v}
}

// Keyed returns a keyed Value wrapping m. The map is not copied.
func Keyed(m map[string][]float64) Value {
	return Value{kind: KeyedKind, keyed: m}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Scalar returns the scalar payload. It is meaningful only when Kind is
// ScalarKind.
func (v Value) Scalar() float64 {
	return v.scalar
}

// Vector returns the vector payload. It is meaningful only when Kind is
// VectorKind.
func (v Value) Vector() []float64 {
	return v.vector
}

// Keyed returns the keyed payload. It is meaningful only when Kind is
// KeyedKind.
func (v Value) Keyed() map[string][]float64 {
	return v.keyed
}

// Equal reports whether two values have the same shape and identical
// entries.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ScalarKind:
		return v.scalar == o.scalar
	case VectorKind:
		return float64sEqual(v.vector, o.vector)
	case KeyedKind:
		if len(v.keyed) != len(o.keyed) {
			return false
		}
		for key, vec := range v.keyed {
			other, ok := o.keyed[key]
			if !ok || !float64sEqual(vec, other) {
				return false
			}
		}
		return true
	}
	return false
}

func float64sEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
