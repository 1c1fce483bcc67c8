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

	log "github.com/golang/glog"
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/flprivacy/dpmech/access"
	"github.com/flprivacy/dpmech/checks"
)

// RandomizedResponseCoins privatizes binary data with the two coin flip
// protocol described by Dwork and Roth in "The Algorithmic Foundations of
// Differential Privacy": flip a coin; if tails, respond truthfully; if
// heads, flip a second coin and respond 1 on heads and 0 on tails.
//
// The reported budget is the ln(3) bound of the canonical protocol with
// two fair coins. Configuring either probability away from 0.5 changes
// the actual privacy level without changing the reported bound, so
// construction logs a warning in that case.
type RandomizedResponseCoins struct {
	probHeadFirst  float64
	probHeadSecond float64
	src            xrand.Source
}

// RandomizedResponseCoinsOptions contains the options necessary to
// initialize a RandomizedResponseCoins mechanism.
type RandomizedResponseCoinsOptions struct {
	ProbHeadFirst  float64      // Probability of answering at random instead of truthfully. Defaults to 0.5.
	ProbHeadSecond float64      // Probability of answering 1 when answering at random. Defaults to 0.5.
	Src            xrand.Source // Randomness source. Defaults to the secure source.
}

// NewRandomizedResponseCoins returns a RandomizedResponseCoins mechanism
// initialized with the given options.
func NewRandomizedResponseCoins(opt *RandomizedResponseCoinsOptions) (*RandomizedResponseCoins, error) {
	if opt == nil {
		opt = &RandomizedResponseCoinsOptions{}
	}
	probHeadFirst := opt.ProbHeadFirst
	if probHeadFirst == 0 {
		probHeadFirst = 0.5
	}
	probHeadSecond := opt.ProbHeadSecond
	if probHeadSecond == 0 {
		probHeadSecond = 0.5
	}
	if err := checks.CheckProbability(probHeadFirst); err != nil {
		return nil, err
	}
	if err := checks.CheckProbability(probHeadSecond); err != nil {
		return nil, err
	}
	if probHeadFirst != 0.5 || probHeadSecond != 0.5 {
		log.Warningf("RandomizedResponseCoins: probabilities (%f, %f) differ from the canonical (0.5, 0.5); "+
			"the reported ln(3) budget only holds for the canonical configuration", probHeadFirst, probHeadSecond)
	}
	return &RandomizedResponseCoins{
		probHeadFirst:  probHeadFirst,
		probHeadSecond: probHeadSecond,
		src:            sourceOrSecure(opt.Src),
	}, nil
}

// EpsilonDelta reports the (ln 3, 0) budget of the canonical two fair
// coin protocol.
func (rr *RandomizedResponseCoins) EpsilonDelta() access.EpsilonDelta {
	return access.EpsilonDelta{Epsilon: math.Log(3)}
}

// Apply privatizes the given binary data. Data must be a scalar or a
// vector with every entry in {0, 1}; the result has the same shape.
func (rr *RandomizedResponseCoins) Apply(data access.Value) (access.Value, error) {
	if err := checks.CheckBinaryData(data); err != nil {
		return access.Value{}, err
	}
	// A draw of 1 against 1-probHeadFirst means the first coin landed
	// tails and the true value is kept.
	tails := distuv.Bernoulli{P: 1 - rr.probHeadFirst, Src: rr.src}
	second := distuv.Bernoulli{P: rr.probHeadSecond, Src: rr.src}
	return mapValue(data, func(x float64) float64 {
		t := tails.Rand()
		s := second.Rand()
		return x*t + (1-t)*s
	}), nil
}
