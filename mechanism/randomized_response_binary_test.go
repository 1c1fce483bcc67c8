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

package mechanism

import (
	"math"
	"testing"

	"github.com/grd/stat"

	"github.com/flprivacy/dpmech/access"
)

func TestNewRandomizedResponseBinary(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		opt     *RandomizedResponseBinaryOptions
		wantErr bool
	}{
		{"epsilon marginally above the minimum ln(9) for f0=f1=0.9",
			&RandomizedResponseBinaryOptions{F0: 0.9, F1: 0.9, Epsilon: math.Log(9) + 1e-9},
			false},
		{"epsilon above the minimum",
			&RandomizedResponseBinaryOptions{F0: 0.9, F1: 0.9, Epsilon: 5},
			false},
		{"epsilon below the minimum ln(9)",
			&RandomizedResponseBinaryOptions{F0: 0.9, F1: 0.9, Epsilon: 0.01},
			true},
		{"zero epsilon at the ln(1) boundary for f0=f1=0.5",
			&RandomizedResponseBinaryOptions{F0: 0.5, F1: 0.5, Epsilon: math.Log(1)},
			false},
		{"any nonnegative epsilon for f0=f1=0.5",
			&RandomizedResponseBinaryOptions{F0: 0.5, F1: 0.5, Epsilon: 0.3},
			false},
		{"negative epsilon",
			&RandomizedResponseBinaryOptions{F0: 0.5, F1: 0.5, Epsilon: -1},
			true},
		{"f0 at the open lower bound",
			&RandomizedResponseBinaryOptions{F0: 0, F1: 0.5, Epsilon: 1},
			true},
		{"f0 at the open upper bound",
			&RandomizedResponseBinaryOptions{F0: 1, F1: 0.5, Epsilon: 100},
			true},
		{"f1 outside the unit interval",
			&RandomizedResponseBinaryOptions{F0: 0.5, F1: -0.2, Epsilon: 1},
			true},
		{"f1 is NaN",
			&RandomizedResponseBinaryOptions{F0: 0.5, F1: math.NaN(), Epsilon: 1},
			true},
		{"nil options",
			nil,
			true},
	} {
		if _, err := NewRandomizedResponseBinary(tc.opt); (err != nil) != tc.wantErr {
			t.Errorf("NewRandomizedResponseBinary: when %s for err got %v, want %t", tc.desc, err, tc.wantErr)
		}
	}
}

func TestRandomizedResponseBinaryEpsilonDelta(t *testing.T) {
	rr, err := NewRandomizedResponseBinary(&RandomizedResponseBinaryOptions{F0: 0.9, F1: 0.9, Epsilon: 2.5})
	if err != nil {
		t.Fatalf("NewRandomizedResponseBinary: unexpected error %v", err)
	}
	got := rr.EpsilonDelta()
	if !approxEqual(got.Epsilon, 2.5) || got.Delta != 0 {
		t.Errorf("EpsilonDelta: got (%f, %e), want (2.5, 0)", got.Epsilon, got.Delta)
	}
}

func TestRandomizedResponseBinaryRejectsInvalidData(t *testing.T) {
	rr, err := NewRandomizedResponseBinary(&RandomizedResponseBinaryOptions{F0: 0.8, F1: 0.8, Epsilon: 5})
	if err != nil {
		t.Fatalf("NewRandomizedResponseBinary: unexpected error %v", err)
	}
	for _, tc := range []struct {
		desc string
		data access.Value
	}{
		{"non-binary scalar", access.Scalar(2)},
		{"non-binary vector entry", access.Vector([]float64{1, 0.25})},
		{"keyed data", access.Keyed(map[string][]float64{"k": {1}})},
	} {
		if _, err := rr.Apply(tc.data); err == nil {
			t.Errorf("Apply: when %s expected an error, got none", tc.desc)
		}
	}
}

// The response follows the conditional probability table: a 1 response
// with probability f1 for input 1 and probability 1-f0 for input 0.
func TestRandomizedResponseBinaryConditionalProbabilities(t *testing.T) {
	const numberOfSamples = 50000
	f0, f1 := 0.7, 0.8
	rr, err := NewRandomizedResponseBinary(&RandomizedResponseBinaryOptions{F0: f0, F1: f1, Epsilon: 2})
	if err != nil {
		t.Fatalf("NewRandomizedResponseBinary: unexpected error %v", err)
	}
	for _, tc := range []struct {
		input float64
		want  float64
	}{
		{input: 1, want: f1},
		{input: 0, want: 1 - f0},
	} {
		data := make([]float64, numberOfSamples)
		for i := range data {
			data[i] = tc.input
		}
		got, err := rr.Apply(access.Vector(data))
		if err != nil {
			t.Fatalf("Apply: unexpected error %v", err)
		}
		for i, v := range got.Vector() {
			if v != 0 && v != 1 {
				t.Fatalf("Apply: got non-binary response %f at index %d", v, i)
			}
		}
		// The frequency of 1 responses is approximately Gaussian with mean
		// tc.want and standard deviation sqrt(tc.want*(1-tc.want) /
		// numberOfSamples). The tolerance is set to the 99.9995% quantile of
		// the anticipated distribution, so the test falsely rejects with a
		// probability of 10⁻⁵.
		tolerance := 4.41717 * math.Sqrt(tc.want*(1-tc.want)/float64(numberOfSamples))
		responses := stat.Float64Slice(got.Vector())
		if freq := stat.Mean(responses); !nearEqual(freq, tc.want, tolerance) {
			t.Errorf("got P(output=1 | input=%.0f) = %f, want %f (tolerance %f)", tc.input, freq, tc.want, tolerance)
		}
	}
}
