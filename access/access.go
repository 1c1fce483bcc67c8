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

// Package access defines the contracts for differentially private access
// to raw data: the value model for query results, the sensitivity model,
// and the capability interface every mechanism implements.
package access

// EpsilonDelta is the privacy budget reported by a mechanism. Epsilon
// bounds the privacy loss of a single access; Delta is the probability of
// the epsilon guarantee failing and is 0 for pure epsilon-DP mechanisms.
type EpsilonDelta struct {
	Epsilon float64
	Delta   float64
}

// DataAccess is the capability contract for differentially private access
// to private data. Apply evaluates the mechanism on the supplied data and
// returns a freshly allocated privatized result; a validation error aborts
// the call with no side effect and leaves the mechanism usable.
// EpsilonDelta reports the privacy budget consumed by a single call to
// Apply.
//
// Implementations are configured once at construction and do not mutate
// internal state across calls. Concurrent calls are safe only if the
// underlying randomness source is.
type DataAccess interface {
	Apply(data Value) (Value, error)
	EpsilonDelta() EpsilonDelta
}
