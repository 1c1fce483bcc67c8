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

// Sensitivity describes how much a query's output can change from a
// single record's contribution: the L_1 sensitivity for the Laplace
// mechanism and the L_2 sensitivity for the Gaussian mechanism. It is
// either a scalar applied to every entry of the query result, a vector
// applied elementwise to a vector result, or a per-key scalar mapping for
// a keyed result. Its shape must be compatible with the shape of the
// query result it calibrates; see checks.CheckSensitivityShape.
//
// The zero Sensitivity is the scalar 0, which fails the positivity check
// of every mechanism constructor.
type Sensitivity struct {
	kind   Kind
	scalar float64
	vector []float64
	keyed  map[string]float64
}

// ScalarSensitivity returns a scalar Sensitivity.
func ScalarSensitivity(s float64) Sensitivity {
	return Sensitivity{kind: ScalarKind, scalar: s}
}

// VectorSensitivity returns a per-element Sensitivity wrapping s. The
// slice is not copied.
func VectorSensitivity(s []float64) Sensitivity {
	return Sensitivity{kind: VectorKind, vector: s}
}

// KeyedSensitivity returns a per-key Sensitivity wrapping m. The map is
// not copied.
func KeyedSensitivity(m map[string]float64) Sensitivity {
	return Sensitivity{kind: KeyedKind, keyed: m}
}

// Kind reports the shape of the sensitivity.
func (s Sensitivity) Kind() Kind {
	return s.kind
}

// Scalar returns the scalar payload. It is meaningful only when Kind is
// ScalarKind.
func (s Sensitivity) Scalar() float64 {
	return s.scalar
}

// Vector returns the per-element payload. It is meaningful only when Kind
// is VectorKind.
func (s Sensitivity) Vector() []float64 {
	return s.vector
}

// Keyed returns the per-key payload. It is meaningful only when Kind is
// KeyedKind.
func (s Sensitivity) Keyed() map[string]float64 {
	return s.keyed
}
