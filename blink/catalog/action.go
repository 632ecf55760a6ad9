// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package catalog

// Parameter describes a user-supplied input of an action.
type Parameter struct {
	Name     string `json:"name"`
	Label    string `json:"label,omitempty"`
	Required bool   `json:"required,omitempty"`
}

// Action describes one button of a blink.
type Action struct {
	Kind       Kind
	Selector   string
	Label      string
	Parameters []Parameter
}

// Blink is a set of actions served under a single path.
type Blink struct {
	Name        string
	Title       string
	Icon        string
	Description string
	Label       string
	Disabled    bool
	Actions     []Action
}

// NewAction creates an action of the given kind, using the kind's parameter
// schema.
func NewAction(kind Kind, selector string, label string) Action {
	a := Action{
		Kind:       kind,
		Selector:   selector,
		Label:      label,
		Parameters: kind.Schema(),
	}
	return a
}

// Required returns the names of the required parameters.
func (a Action) Required() []string {
	var names []string
	for _, param := range a.Parameters {
		if param.Required {
			names = append(names, param.Name)
		}
	}
	return names
}
