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
	"fmt"
	"math"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/flprivacy/dpmech/access"
	"github.com/flprivacy/dpmech/checks"
)

// RandomizedResponseBinary implements the general binary randomized
// response mechanism defined through the conditional probabilities
//
//	P( output=0 | input=0 ) = f0
//	P( output=1 | input=1 ) = f1
//
// The mechanism is epsilon-differentially private for every
// epsilon >= ln max{ f0/(1-f1), f1/(1-f0) }; construction fails for a
// smaller epsilon. It is maximally random for f0 = f1 = 0.5 and contains
// the coin flip protocol as a special case.
type RandomizedResponseBinary struct {
	f0      float64
	f1      float64
	epsilon float64
	src     xrand.Source
}

// RandomizedResponseBinaryOptions contains the options necessary to
// initialize a RandomizedResponseBinary mechanism.
type RandomizedResponseBinaryOptions struct {
	F0      float64      // Probability of a 0 response when the input is 0. Required, strictly between 0 and 1.
	F1      float64      // Probability of a 1 response when the input is 1. Required, strictly between 0 and 1.
	Epsilon float64      // Declared privacy parameter ε. Required.
	Src     xrand.Source // Randomness source. Defaults to the secure source.
}

// NewRandomizedResponseBinary returns a RandomizedResponseBinary
// mechanism initialized with the given options.
func NewRandomizedResponseBinary(opt *RandomizedResponseBinaryOptions) (*RandomizedResponseBinary, error) {
	if opt == nil {
		opt = &RandomizedResponseBinaryOptions{}
	}
	if err := checks.CheckEpsilon(opt.Epsilon); err != nil {
		return nil, err
	}
	if opt.F0 <= 0 || opt.F0 >= 1 || math.IsNaN(opt.F0) {
		return nil, fmt.Errorf("F0 is %f, must be strictly between 0 and 1", opt.F0)
	}
	if opt.F1 <= 0 || opt.F1 >= 1 || math.IsNaN(opt.F1) {
		return nil, fmt.Errorf("F1 is %f, must be strictly between 0 and 1", opt.F1)
	}
	minEpsilon := math.Log(math.Max(opt.F0/(1-opt.F1), opt.F1/(1-opt.F0)))
	if opt.Epsilon < minEpsilon {
		return nil, fmt.Errorf("Epsilon is %f, must be at least ln max( f0/(1-f1), f1/(1-f0) ) = %f for the "+
			"mechanism to be epsilon-differentially private", opt.Epsilon, minEpsilon)
	}
	return &RandomizedResponseBinary{
		f0:      opt.F0,
		f1:      opt.F1,
		epsilon: opt.Epsilon,
		src:     sourceOrSecure(opt.Src),
	}, nil
}

// EpsilonDelta reports the declared (ε, 0) budget.
func (rr *RandomizedResponseBinary) EpsilonDelta() access.EpsilonDelta {
	return access.EpsilonDelta{Epsilon: rr.epsilon}
}

// Apply privatizes the given binary data. Data must be a scalar or a
// vector with every entry in {0, 1}; the result has the same shape and
// each response is drawn independently from the conditional probability
// table.
func (rr *RandomizedResponseBinary) Apply(data access.Value) (access.Value, error) {
	if err := checks.CheckBinaryData(data); err != nil {
		return access.Value{}, err
	}
	return mapValue(data, func(x float64) float64 {
		p := 1 - rr.f0 // P( output=1 | input=0 )
		if x == 1 {
			p = rr.f1 // P( output=1 | input=1 )
		}
		return distuv.Bernoulli{P: p, Src: rr.src}.Rand()
	}), nil
}
