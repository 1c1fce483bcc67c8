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

// Package checks contains the shared precondition checks of the
// differentially private mechanisms. Every check returns an error
// describing the violated condition and the offending value; none of them
// panic.
package checks

import (
	"fmt"
	"math"

	"github.com/flprivacy/dpmech/access"
)

// CheckEpsilon returns an error if ε is strictly negative or not finite.
func CheckEpsilon(epsilon float64) error {
	if epsilon < 0 || math.IsInf(epsilon, 0) || math.IsNaN(epsilon) {
		return fmt.Errorf("Epsilon is %f, must be nonnegative and finite", epsilon)
	}
	return nil
}

// CheckEpsilonStrict returns an error if ε is nonpositive or not finite.
func CheckEpsilonStrict(epsilon float64) error {
	if epsilon <= 0 || math.IsInf(epsilon, 0) || math.IsNaN(epsilon) {
		return fmt.Errorf("Epsilon is %f, must be strictly positive and finite", epsilon)
	}
	return nil
}

// CheckDelta returns an error if δ is negative or greater than or equal
// to 1.
func CheckDelta(delta float64) error {
	if math.IsNaN(delta) {
		return fmt.Errorf("Delta is %e, cannot be NaN", delta)
	}
	if delta < 0 {
		return fmt.Errorf("Delta is %e, cannot be negative", delta)
	}
	if delta >= 1 {
		return fmt.Errorf("Delta is %e, must be strictly less than 1", delta)
	}
	return nil
}

// CheckDeltaStrict returns an error if δ is nonpositive or greater than
// or equal to 1.
func CheckDeltaStrict(delta float64) error {
	if math.IsNaN(delta) {
		return fmt.Errorf("Delta is %e, cannot be NaN", delta)
	}
	if delta <= 0 {
		return fmt.Errorf("Delta is %e, must be strictly positive", delta)
	}
	if delta >= 1 {
		return fmt.Errorf("Delta is %e, must be strictly less than 1", delta)
	}
	return nil
}

// CheckNoDelta returns an error if δ is non-zero.
func CheckNoDelta(delta float64) error {
	if delta != 0 {
		return fmt.Errorf("Delta is %e, must be 0", delta)
	}
	return nil
}

// CheckEpsilonDelta returns an error if the pair is not a well-formed
// privacy budget: ε must be strictly positive and finite, δ must be
// within [0, 1).
func CheckEpsilonDelta(ed access.EpsilonDelta) error {
	if err := CheckEpsilonStrict(ed.Epsilon); err != nil {
		return err
	}
	return CheckDelta(ed.Delta)
}

// CheckProbability returns an error if p is outside [0, 1].
func CheckProbability(p float64) error {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return fmt.Errorf("Probability is %f, must be within [0, 1]", p)
	}
	return nil
}

// CheckBinaryData returns an error if data is not scalar or vector shaped
// or if any entry is outside {0, 1}.
func CheckBinaryData(data access.Value) error {
	switch data.Kind() {
	case access.ScalarKind:
		return checkBinaryEntry(data.Scalar())
	case access.VectorKind:
		for _, v := range data.Vector() {
			if err := checkBinaryEntry(v); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("binary mechanisms support scalar and vector data, got %v data", data.Kind())
}

func checkBinaryEntry(v float64) error {
	if v != 0 && v != 1 {
		return fmt.Errorf("data entry is %f, must be 0 or 1", v)
	}
	return nil
}

// CheckSensitivityPositive returns an error if any entry of the
// sensitivity is nonpositive or not finite, or if a vector or keyed
// sensitivity is empty.
func CheckSensitivityPositive(s access.Sensitivity) error {
	switch s.Kind() {
	case access.ScalarKind:
		return checkSensitivityEntry(s.Scalar())
	case access.VectorKind:
		if len(s.Vector()) == 0 {
			return fmt.Errorf("vector sensitivity must not be empty")
		}
		for _, v := range s.Vector() {
			if err := checkSensitivityEntry(v); err != nil {
				return err
			}
		}
		return nil
	case access.KeyedKind:
		if len(s.Keyed()) == 0 {
			return fmt.Errorf("keyed sensitivity must not be empty")
		}
		for key, v := range s.Keyed() {
			if err := checkSensitivityEntry(v); err != nil {
				return fmt.Errorf("key %q: %v", key, err)
			}
		}
		return nil
	}
	return fmt.Errorf("unknown sensitivity kind %v", s.Kind())
}

func checkSensitivityEntry(v float64) error {
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("Sensitivity is %f, must be strictly positive and finite", v)
	}
	return nil
}

// CheckSensitivityShape returns an error if the shape of the sensitivity
// is not compatible with the shape of the query result. A scalar
// sensitivity is compatible with every result shape; a vector sensitivity
// requires a vector result of the same length; a keyed sensitivity
// requires a keyed result with exactly the same key set.
func CheckSensitivityShape(s access.Sensitivity, queryResult access.Value) error {
	switch queryResult.Kind() {
	case access.ScalarKind:
		if s.Kind() != access.ScalarKind {
			return fmt.Errorf("%v sensitivity is not compatible with a scalar query result", s.Kind())
		}
		return nil
	case access.VectorKind:
		switch s.Kind() {
		case access.ScalarKind:
			return nil
		case access.VectorKind:
			if len(s.Vector()) != len(queryResult.Vector()) {
				return fmt.Errorf("sensitivity has %d entries, query result has %d", len(s.Vector()), len(queryResult.Vector()))
			}
			return nil
		}
		return fmt.Errorf("%v sensitivity is not compatible with a vector query result", s.Kind())
	case access.KeyedKind:
		switch s.Kind() {
		case access.ScalarKind:
			return nil
		case access.KeyedKind:
			return checkKeySets(s.Keyed(), queryResult.Keyed())
		}
		return fmt.Errorf("%v sensitivity is not compatible with a keyed query result", s.Kind())
	}
	return fmt.Errorf("unknown query result kind %v", queryResult.Kind())
}

func checkKeySets(sens map[string]float64, queryResult map[string][]float64) error {
	for key := range queryResult {
		if _, ok := sens[key]; !ok {
			return fmt.Errorf("query result key %q has no sensitivity entry", key)
		}
	}
	for key := range sens {
		if _, ok := queryResult[key]; !ok {
			return fmt.Errorf("sensitivity key %q is missing from the query result", key)
		}
	}
	return nil
}
