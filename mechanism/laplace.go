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
	"sort"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/flprivacy/dpmech/access"
	"github.com/flprivacy/dpmech/checks"
)

// LaplaceMechanism adds independent Laplace(0, sensitivity/ε) noise to
// every entry of a numeric query result, achieving ε-differential privacy
// for a query with the given L_1 sensitivity.
//
// The query result may be a scalar, a vector, or a keyed mapping of
// vectors. The sensitivity must be shape compatible with the query
// result: scalar for any shape, per-element for a vector result, per-key
// for a keyed result.
type LaplaceMechanism struct {
	sensitivity access.Sensitivity
	epsilon     float64
	query       access.Query
	src         xrand.Source
}

// LaplaceOptions contains the options necessary to initialize a
// LaplaceMechanism.
type LaplaceOptions struct {
	Sensitivity access.Sensitivity // L_1 sensitivity of the query. Required, strictly positive everywhere.
	Epsilon     float64            // Privacy parameter ε. Required.
	Query       access.Query       // Query evaluated on the data before noise is added. Defaults to the identity.
	Src         xrand.Source       // Randomness source. Defaults to the secure source.
}

// NewLaplaceMechanism returns a LaplaceMechanism initialized with the
// given options.
func NewLaplaceMechanism(opt *LaplaceOptions) (*LaplaceMechanism, error) {
	if opt == nil {
		opt = &LaplaceOptions{}
	}
	if err := checks.CheckEpsilonDelta(access.EpsilonDelta{Epsilon: opt.Epsilon}); err != nil {
		return nil, err
	}
	if err := checks.CheckSensitivityPositive(opt.Sensitivity); err != nil {
		return nil, err
	}
	query := opt.Query
	if query == nil {
		query = access.Identity{}
	}
	return &LaplaceMechanism{
		sensitivity: opt.Sensitivity,
		epsilon:     opt.Epsilon,
		query:       query,
		src:         sourceOrSecure(opt.Src),
	}, nil
}

// EpsilonDelta reports the (ε, 0) budget of the mechanism.
func (lm *LaplaceMechanism) EpsilonDelta() access.EpsilonDelta {
	return access.EpsilonDelta{Epsilon: lm.epsilon}
}

// Apply evaluates the query on data and returns the query result with
// independent Laplace noise added to every entry. The noise scale of an
// entry is its sensitivity divided by ε. Fails if the sensitivity does
// not match the shape of the query result.
func (lm *LaplaceMechanism) Apply(data access.Value) (access.Value, error) {
	queryResult := lm.query.Get(data)
	if err := checks.CheckSensitivityShape(lm.sensitivity, queryResult); err != nil {
		return access.Value{}, err
	}
	switch queryResult.Kind() {
	case access.ScalarKind:
		b := lm.sensitivity.Scalar() / lm.epsilon
		return access.Scalar(queryResult.Scalar() + lm.laplace(b)), nil
	case access.VectorKind:
		scaleAt := func(int) float64 { return lm.sensitivity.Scalar() / lm.epsilon }
		if lm.sensitivity.Kind() == access.VectorKind {
			sens := lm.sensitivity.Vector()
			scaleAt = func(i int) float64 { return sens[i] / lm.epsilon }
		}
		return access.Vector(lm.noisyVector(queryResult.Vector(), scaleAt)), nil
	case access.KeyedKind:
		keyed := queryResult.Keyed()
		// Keys are drawn in sorted order so that a fixed entropy source
		// yields reproducible output.
		keys := make([]string, 0, len(keyed))
		for key := range keyed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := make(map[string][]float64, len(keyed))
		for _, key := range keys {
			b := lm.sensitivity.Scalar() / lm.epsilon
			if lm.sensitivity.Kind() == access.KeyedKind {
				b = lm.sensitivity.Keyed()[key] / lm.epsilon
			}
			out[key] = lm.noisyVector(keyed[key], func(int) float64 { return b })
		}
		return access.Keyed(out), nil
	}
	return access.Value{}, fmt.Errorf("unknown query result kind %v", queryResult.Kind())
}

// laplace draws a single Laplace(0, scale) sample.
func (lm *LaplaceMechanism) laplace(scale float64) float64 {
	return distuv.Laplace{Mu: 0, Scale: scale, Src: lm.src}.Rand()
}

func (lm *LaplaceMechanism) noisyVector(v []float64, scaleAt func(int) float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x + lm.laplace(scaleAt(i))
	}
	return out
}
