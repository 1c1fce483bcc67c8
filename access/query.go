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

package access

// Query derives a result from raw private data before noise is added.
// Implementations must be pure: Get may not retain or mutate data, and
// repeated calls on the same data must return the same result.
type Query interface {
	Get(data Value) Value
}

// Identity is the default query. It returns the data unchanged.
type Identity struct{}

// Get returns data as is.
func (Identity) Get(data Value) Value {
	return data
}
