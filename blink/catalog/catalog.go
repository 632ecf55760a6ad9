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

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/optakt/blink-actions/blink/failure"
)

// SelectorParam is the query parameter that selects an action of a blink.
const SelectorParam = "action"

// Catalog is the immutable set of blinks offered by the server.
type Catalog struct {
	blinks map[string]Blink
}

// New creates a catalog from the given blinks. It fails when the blinks do not
// pass validation.
func New(blinks ...Blink) (*Catalog, error) {

	c := Catalog{
		blinks: make(map[string]Blink, len(blinks)),
	}

	var merr *multierror.Error
	for _, blink := range blinks {
		_, ok := c.blinks[blink.Name]
		if ok {
			merr = multierror.Append(merr, fmt.Errorf("duplicate blink name (%s)", blink.Name))
			continue
		}
		c.blinks[blink.Name] = blink
	}

	err := c.Validate()
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	err = merr.ErrorOrNil()
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return &c, nil
}

// Names returns the sorted names of all blinks.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.blinks))
	for name := range c.blinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Blink returns the blink with the given name.
func (c *Catalog) Blink(name string) (Blink, error) {
	blink, ok := c.blinks[name]
	if !ok {
		return Blink{}, failure.UnknownAction{
			Description: failure.NewDescription("unknown blink"),
			Blink:       name,
		}
	}
	return blink, nil
}

// Resolve returns the action of the given blink matching the selector. An
// empty selector resolves to the first action of the blink.
func (c *Catalog) Resolve(name string, selector string) (Action, error) {

	blink, err := c.Blink(name)
	if err != nil {
		return Action{}, err
	}

	if selector == "" {
		return blink.Actions[0], nil
	}

	for _, action := range blink.Actions {
		if action.Selector == selector {
			return action, nil
		}
	}

	return Action{}, failure.UnknownAction{
		Description: failure.NewDescription("no action with this selector"),
		Blink:       name,
		Selector:    selector,
	}
}

// Validate checks every blink and action, and reports all problems at once.
func (c *Catalog) Validate() error {

	var merr *multierror.Error
	for _, name := range c.Names() {
		blink := c.blinks[name]

		if name == "" || strings.ContainsAny(name, "/?#") {
			merr = multierror.Append(merr, fmt.Errorf("invalid blink name (%q)", name))
		}
		if blink.Title == "" {
			merr = multierror.Append(merr, fmt.Errorf("missing title (blink: %s)", name))
		}
		if len(blink.Actions) == 0 {
			merr = multierror.Append(merr, fmt.Errorf("no actions (blink: %s)", name))
		}

		selectors := make(map[string]struct{})
		for i, action := range blink.Actions {
			if action.Kind.String() == "unknown" {
				merr = multierror.Append(merr, fmt.Errorf("unknown action kind (blink: %s, index: %d)", name, i))
			}
			if action.Label == "" {
				merr = multierror.Append(merr, fmt.Errorf("missing action label (blink: %s, index: %d)", name, i))
			}
			_, ok := selectors[action.Selector]
			if ok {
				merr = multierror.Append(merr, fmt.Errorf("duplicate selector (blink: %s, selector: %q)", name, action.Selector))
			}
			selectors[action.Selector] = struct{}{}

			for _, param := range action.Parameters {
				if param.Name == "" || param.Name == SelectorParam {
					merr = multierror.Append(merr, fmt.Errorf("invalid parameter name (blink: %s, selector: %q, name: %q)", name, action.Selector, param.Name))
				}
			}
		}
	}

	return merr.ErrorOrNil()
}

// Href renders the link a client follows to execute the action. Parameters
// are rendered as `{name}` placeholders that the client fills in.
func Href(base string, name string, action Action) (string, error) {

	if base == "" {
		return "", errors.New("missing base URL")
	}

	link, err := url.Parse(strings.TrimSuffix(base, "/") + "/api/actions/" + url.PathEscape(name))
	if err != nil {
		return "", fmt.Errorf("could not parse action URL: %w", err)
	}

	parts := make([]string, 0, len(action.Parameters)+1)
	if action.Selector != "" {
		parts = append(parts, SelectorParam+"="+url.QueryEscape(action.Selector))
	}
	for _, param := range action.Parameters {
		parts = append(parts, url.QueryEscape(param.Name)+"={"+param.Name+"}")
	}
	link.RawQuery = strings.Join(parts, "&")

	return link.String(), nil
}
