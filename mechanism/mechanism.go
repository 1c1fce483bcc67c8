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

// Package mechanism implements differentially private randomization
// mechanisms: randomized response for binary data, the Laplace and
// Gaussian mechanisms for numeric queries, and the exponential mechanism
// for discrete response spaces.
//
// Every mechanism is configured once through its options struct; its
// constructor validates that the declared privacy budget is achievable
// with the given parameters and fails otherwise. A constructed mechanism
// can be applied arbitrarily many times and satisfies access.DataAccess.
//
// All sampling is driven by a golang.org/x/exp/rand.Source. The default
// is the cryptographically secure source from the rand package; passing a
// seeded source makes the draws deterministic, which is mainly useful in
// tests. A mechanism is safe for concurrent use only if its source is.
package mechanism

import (
	xrand "golang.org/x/exp/rand"

	"github.com/flprivacy/dpmech/access"
	"github.com/flprivacy/dpmech/rand"
)

// sourceOrSecure returns src if it is set and the process-wide secure
// source otherwise.
func sourceOrSecure(src xrand.Source) xrand.Source {
	if src != nil {
		return src
	}
	return rand.Secure()
}

// mapValue applies f to every entry of a scalar or vector value and
// returns a freshly allocated value of the same shape.
func mapValue(data access.Value, f func(float64) float64) access.Value {
	if data.Kind() == access.ScalarKind {
		return access.Scalar(f(data.Scalar()))
	}
	in := data.Vector()
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return access.Vector(out)
}
