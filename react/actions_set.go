// Copyright 2026 The react-go Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package react

import "strconv"

// ActionSet is the registry resolving action codes to human-readable
// names. Codes are dense integers handed out in definition order.
//
// An ActionSet is meant to be populated once during setup. After that it
// is read-only and safe for concurrent use.
type ActionSet struct {
	names []string
}

// NewActionSet returns an empty registry.
func NewActionSet() *ActionSet {
	return &ActionSet{}
}

// DefineAction registers a name and returns its code.
func (s *ActionSet) DefineAction(name string) int {
	s.names = append(s.names, name)
	return len(s.names) - 1
}

// ActionName resolves a code previously returned by DefineAction. It
// panics on codes that were never defined.
func (s *ActionSet) ActionName(code int) string {
	if code < 0 || code >= len(s.names) {
		panic("react: action code " + strconv.Itoa(code) + " is not defined")
	}
	return s.names[code]
}

// Len returns the number of defined actions.
func (s *ActionSet) Len() int {
	return len(s.names)
}
