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

package keys

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultVariable is the environment variable holding the server secret key.
const DefaultVariable = "SECRET_KEY"

// LoadEnvironment loads variables from the given dotenv files into the process
// environment. Variables that are already set take precedence, and missing
// files are ignored.
func LoadEnvironment(files ...string) error {
	for _, file := range files {
		err := godotenv.Load(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("could not load environment file (%s): %w", file, err)
		}
	}
	return nil
}

// FromEnvironment builds the keypair from the named environment variable.
func FromEnvironment(name string) (Keypair, error) {
	secret, ok := os.LookupEnv(name)
	if !ok {
		return Keypair{}, fmt.Errorf("environment variable %s is not set", name)
	}

	key, err := Parse(secret)
	if err != nil {
		return Keypair{}, fmt.Errorf("could not parse secret key from %s: %w", name, err)
	}

	return key, nil
}
