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

// Package model defines the contract a trainable model satisfies so that
// its parameters can be privatized before they leave the party that
// trained it.
//
// A model exposes its parameters as a keyed access.Value, one key per
// named parameter group (for example "weights" and "bias"). Pairing a
// keyed parameter Value with a matching access.KeyedSensitivity lets a
// mechanism such as mechanism.LaplaceMechanism calibrate noise per group.
// This package deliberately contains no model implementations.
package model

import "github.com/flprivacy/dpmech/access"

// Model is a trainable model whose parameters can be read and replaced.
type Model interface {
	// Train fits the model to the given data and labels.
	Train(data, labels access.Value) error

	// Predict returns the model's output for the given data.
	Predict(data access.Value) (access.Value, error)

	// Evaluate returns a performance metric of the model on the given
	// data and labels. Larger is not necessarily better; the metric's
	// meaning is up to the implementation.
	Evaluate(data, labels access.Value) (float64, error)

	// Params returns the model's current parameters, keyed by parameter
	// group name.
	Params() access.Value

	// SetParams replaces the model's parameters. The keyed value must
	// carry the same key set and per-key shapes as Params returns.
	SetParams(params access.Value) error
}
