// Copyright 2017 Google Inc.
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

package astmodel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadModule decodes a YAML-encoded module tree from path. This stands
// in for the external parser/fixer pass: it is the on-disk
// serialization of the fully resolved AST that pass would hand to the
// translator.
func LoadModule(path string) (*Module, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("astmodel: reading %s: %w", path, err)
	}
	var mod Module
	if err := yaml.Unmarshal(b, &mod); err != nil {
		return nil, fmt.Errorf("astmodel: decoding %s: %w", path, err)
	}
	return &mod, nil
}
