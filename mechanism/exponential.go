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

// Utility scores a discrete response space against the private data. It
// must be vectorized: for the given data it returns one score per
// candidate in r.
type Utility func(data access.Value, r []float64) []float64

// ExponentialMechanism samples from a discrete response space with
// probability proportional to exp(ε·u/(2·Δu)), where u is the utility of
// a candidate response. The mechanism is ε-differentially private by
// construction of the sampling weights when the utility function has
// sensitivity Δu.
type ExponentialMechanism struct {
	utility  Utility
	response []float64
	deltaU   float64
	epsilon  float64
	size     int
	src      xrand.Source
}

// ExponentialOptions contains the options necessary to initialize an
// ExponentialMechanism.
type ExponentialOptions struct {
	Utility  Utility      // Vectorized utility function. Required.
	Response []float64    // Ordered response space samples are drawn from. Required, non-empty.
	DeltaU   float64      // Sensitivity of the utility function. Required, strictly positive.
	Epsilon  float64      // Privacy parameter ε. Required.
	Size     int          // Number of independent samples drawn per call. Defaults to 1.
	Src      xrand.Source // Randomness source. Defaults to the secure source.
}

// NewExponentialMechanism returns an ExponentialMechanism initialized
// with the given options.
func NewExponentialMechanism(opt *ExponentialOptions) (*ExponentialMechanism, error) {
	if opt == nil {
		opt = &ExponentialOptions{}
	}
	if err := checks.CheckEpsilonDelta(access.EpsilonDelta{Epsilon: opt.Epsilon}); err != nil {
		return nil, err
	}
	if opt.Utility == nil {
		return nil, fmt.Errorf("a utility function is required")
	}
	if len(opt.Response) == 0 {
		return nil, fmt.Errorf("the response space must not be empty")
	}
	if opt.DeltaU <= 0 || math.IsInf(opt.DeltaU, 0) || math.IsNaN(opt.DeltaU) {
		return nil, fmt.Errorf("DeltaU is %f, must be strictly positive and finite", opt.DeltaU)
	}
	if opt.Size < 0 {
		return nil, fmt.Errorf("Size is %d, must be positive", opt.Size)
	}
	size := opt.Size
	if size == 0 {
		size = 1
	}
	response := make([]float64, len(opt.Response))
	copy(response, opt.Response)
	return &ExponentialMechanism{
		utility:  opt.Utility,
		response: response,
		deltaU:   opt.DeltaU,
		epsilon:  opt.Epsilon,
		size:     size,
		src:      sourceOrSecure(opt.Src),
	}, nil
}

// EpsilonDelta reports the (ε, 0) budget of the mechanism.
func (em *ExponentialMechanism) EpsilonDelta() access.EpsilonDelta {
	return access.EpsilonDelta{Epsilon: em.epsilon}
}

// Apply scores every candidate response on the given data and draws Size
// samples from the response space with replacement, weighted by
// exp(ε·u/(2·Δu)). The result is a vector of the drawn samples. Fails if
// the utility function does not return one score per candidate.
func (em *ExponentialMechanism) Apply(data access.Value) (access.Value, error) {
	utilities := em.utility(data, em.response)
	if len(utilities) != len(em.response) {
		return access.Value{}, fmt.Errorf("utility function returned %d scores for %d responses", len(utilities), len(em.response))
	}
	// The maximum utility is subtracted before exponentiation to avoid
	// overflow. The constant factor cancels when the weights are
	// normalized, so the sampled distribution is unchanged.
	maxUtility := utilities[0]
	for _, u := range utilities[1:] {
		if u > maxUtility {
			maxUtility = u
		}
	}
	weights := make([]float64, len(utilities))
	for i, u := range utilities {
		weights[i] = math.Exp(em.epsilon * (u - maxUtility) / (2 * em.deltaU))
	}
	dist := distuv.NewCategorical(weights, em.src)
	samples := make([]float64, em.size)
	for i := range samples {
		samples[i] = em.response[int(dist.Rand())]
	}
	return access.Vector(samples), nil
}
