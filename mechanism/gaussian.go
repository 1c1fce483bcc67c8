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

// GaussianMechanism adds independent Gaussian noise with standard
// deviation sqrt(2 ln(1.25/δ)) * sensitivity / ε to every entry of a
// numeric query result, achieving (ε, δ)-differential privacy for a query
// with the given L_2 sensitivity. The calibration requires 0 < ε < 1 and
// δ > 0.
//
// Unlike the Laplace mechanism, keyed query results and keyed
// sensitivities are not supported.
type GaussianMechanism struct {
	sensitivity  access.Sensitivity
	epsilonDelta access.EpsilonDelta
	query        access.Query
	src          xrand.Source
}

// GaussianOptions contains the options necessary to initialize a
// GaussianMechanism.
type GaussianOptions struct {
	Sensitivity  access.Sensitivity  // L_2 sensitivity of the query. Required, strictly positive; scalar or vector.
	EpsilonDelta access.EpsilonDelta // Privacy parameters. Required; 0 < ε < 1 and δ > 0.
	Query        access.Query        // Query evaluated on the data before noise is added. Defaults to the identity.
	Src          xrand.Source        // Randomness source. Defaults to the secure source.
}

// NewGaussianMechanism returns a GaussianMechanism initialized with the
// given options.
func NewGaussianMechanism(opt *GaussianOptions) (*GaussianMechanism, error) {
	if opt == nil {
		opt = &GaussianOptions{}
	}
	if err := checks.CheckEpsilonDelta(opt.EpsilonDelta); err != nil {
		return nil, err
	}
	if opt.EpsilonDelta.Epsilon >= 1 {
		return nil, fmt.Errorf("Epsilon is %f, must be strictly between 0 and 1 for the Gaussian mechanism", opt.EpsilonDelta.Epsilon)
	}
	if err := checks.CheckDeltaStrict(opt.EpsilonDelta.Delta); err != nil {
		return nil, err
	}
	if err := checks.CheckSensitivityPositive(opt.Sensitivity); err != nil {
		return nil, err
	}
	if opt.Sensitivity.Kind() == access.KeyedKind {
		return nil, fmt.Errorf("keyed sensitivity is not supported by the Gaussian mechanism")
	}
	query := opt.Query
	if query == nil {
		query = access.Identity{}
	}
	return &GaussianMechanism{
		sensitivity:  opt.Sensitivity,
		epsilonDelta: opt.EpsilonDelta,
		query:        query,
		src:          sourceOrSecure(opt.Src),
	}, nil
}

// EpsilonDelta reports the (ε, δ) budget of the mechanism.
func (gm *GaussianMechanism) EpsilonDelta() access.EpsilonDelta {
	return gm.epsilonDelta
}

// Apply evaluates the query on data and returns the query result with
// independent Gaussian noise added to every entry. Fails if the query
// result is keyed or the sensitivity does not match its shape.
func (gm *GaussianMechanism) Apply(data access.Value) (access.Value, error) {
	queryResult := gm.query.Get(data)
	if queryResult.Kind() == access.KeyedKind {
		return access.Value{}, fmt.Errorf("keyed query results are not supported by the Gaussian mechanism")
	}
	if err := checks.CheckSensitivityShape(gm.sensitivity, queryResult); err != nil {
		return access.Value{}, err
	}
	calibration := math.Sqrt(2*math.Log(1.25/gm.epsilonDelta.Delta)) / gm.epsilonDelta.Epsilon
	if queryResult.Kind() == access.ScalarKind {
		sigma := calibration * gm.sensitivity.Scalar()
		return access.Scalar(queryResult.Scalar() + gm.normal(sigma)), nil
	}
	sigmaAt := func(int) float64 { return calibration * gm.sensitivity.Scalar() }
	if gm.sensitivity.Kind() == access.VectorKind {
		sens := gm.sensitivity.Vector()
		sigmaAt = func(i int) float64 { return calibration * sens[i] }
	}
	in := queryResult.Vector()
	out := make([]float64, len(in))
	for i, x := range in {
		out[i] = x + gm.normal(sigmaAt(i))
	}
	return access.Vector(out), nil
}

// normal draws a single Normal(0, sigma) sample.
func (gm *GaussianMechanism) normal(sigma float64) float64 {
	return distuv.Normal{Mu: 0, Sigma: sigma, Src: gm.src}.Rand()
}
