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

package stattestutils

import (
	"math"
	"testing"
)

func TestSampleMean(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		values []float64
		want   float64
	}{
		{"empty slice", nil, 0},
		{"single value", []float64{5}, 5},
		{"symmetric values", []float64{-1, 1}, 0},
		{"mixed values", []float64{1, 2, 3, 6}, 3},
	} {
		if got := SampleMean(tc.values); got != tc.want {
			t.Errorf("SampleMean: when %s got %f, want %f", tc.desc, got, tc.want)
		}
	}
}

func TestSampleVariance(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		values []float64
		want   float64
	}{
		{"empty slice", nil, 0},
		{"single value", []float64{5}, 0},
		{"constant values", []float64{2, 2, 2}, 0},
		{"symmetric values", []float64{-1, 1}, 1},
		{"spread values", []float64{1, 3, 5, 7}, 5},
	} {
		if got := SampleVariance(tc.values); got != tc.want {
			t.Errorf("SampleVariance: when %s got %f, want %f", tc.desc, got, tc.want)
		}
	}
}

func TestSampleStdDev(t *testing.T) {
	values := []float64{1, 3, 5, 7}
	if got, want := SampleStdDev(values), math.Sqrt(5); got != want {
		t.Errorf("SampleStdDev: got %f, want %f", got, want)
	}
}
