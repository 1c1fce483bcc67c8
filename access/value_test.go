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

import "testing"

func TestValueKindAndPayload(t *testing.T) {
	if v := Scalar(2.5); v.Kind() != ScalarKind || v.Scalar() != 2.5 {
		t.Errorf("Scalar: got kind %v payload %f, want scalar 2.5", v.Kind(), v.Scalar())
	}
	if v := Vector([]float64{1, 2}); v.Kind() != VectorKind || len(v.Vector()) != 2 {
		t.Errorf("Vector: got kind %v length %d, want vector of length 2", v.Kind(), len(v.Vector()))
	}
	if v := Keyed(map[string][]float64{"k": {1}}); v.Kind() != KeyedKind || len(v.Keyed()) != 1 {
		t.Errorf("Keyed: got kind %v with %d keys, want keyed with 1 key", v.Kind(), len(v.Keyed()))
	}
	var zero Value
	if zero.Kind() != ScalarKind || zero.Scalar() != 0 {
		t.Errorf("zero Value: got kind %v payload %f, want scalar 0", zero.Kind(), zero.Scalar())
	}
}

func TestValueEqual(t *testing.T) {
	for _, tc := range []struct {
		desc string
		a, b Value
		want bool
	}{
		{"equal scalars", Scalar(1), Scalar(1), true},
		{"unequal scalars", Scalar(1), Scalar(2), false},
		{"scalar vs vector", Scalar(1), Vector([]float64{1}), false},
		{"equal vectors", Vector([]float64{1, 2}), Vector([]float64{1, 2}), true},
		{"vectors of different length", Vector([]float64{1}), Vector([]float64{1, 2}), false},
		{"vectors with different entries", Vector([]float64{1, 2}), Vector([]float64{1, 3}), false},
		{"equal keyed values",
			Keyed(map[string][]float64{"w": {1, 2}, "b": {3}}),
			Keyed(map[string][]float64{"w": {1, 2}, "b": {3}}),
			true},
		{"keyed values with different key sets",
			Keyed(map[string][]float64{"w": {1}}),
			Keyed(map[string][]float64{"b": {1}}),
			false},
		{"keyed values with different entries",
			Keyed(map[string][]float64{"w": {1}}),
			Keyed(map[string][]float64{"w": {2}}),
			false},
	} {
		if got := tc.a.Equal(tc.b); got != tc.want {
			t.Errorf("Equal: when %s got %t, want %t", tc.desc, got, tc.want)
		}
		if got := tc.b.Equal(tc.a); got != tc.want {
			t.Errorf("Equal: when %s (reversed) got %t, want %t", tc.desc, got, tc.want)
		}
	}
}

func TestSensitivityKindAndPayload(t *testing.T) {
	if s := ScalarSensitivity(0.5); s.Kind() != ScalarKind || s.Scalar() != 0.5 {
		t.Errorf("ScalarSensitivity: got kind %v payload %f, want scalar 0.5", s.Kind(), s.Scalar())
	}
	if s := VectorSensitivity([]float64{1, 2}); s.Kind() != VectorKind || len(s.Vector()) != 2 {
		t.Errorf("VectorSensitivity: got kind %v length %d, want vector of length 2", s.Kind(), len(s.Vector()))
	}
	if s := KeyedSensitivity(map[string]float64{"k": 1}); s.Kind() != KeyedKind || s.Keyed()["k"] != 1 {
		t.Errorf("KeyedSensitivity: got kind %v payload %v, want keyed {k: 1}", s.Kind(), s.Keyed())
	}
}

func TestIdentityQuery(t *testing.T) {
	data := Vector([]float64{1, 2, 3})
	if got := (Identity{}).Get(data); !got.Equal(data) {
		t.Errorf("Identity.Get: got %+v, want the data unchanged", got)
	}
}

func TestKindString(t *testing.T) {
	for _, tc := range []struct {
		kind Kind
		want string
	}{
		{ScalarKind, "scalar"},
		{VectorKind, "vector"},
		{KeyedKind, "keyed"},
		{Kind(42), "Kind(42)"},
	} {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind.String: got %q, want %q", got, tc.want)
		}
	}
}
