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

// Binary asn1topb translates ASN.1 module fixtures (already parsed and
// resolved into the YAML AST schema consumed by the astmodel package)
// into Protobuf3 source annotated with protoc-gen-validate rules.
package main

import "github.com/tomikazi/asn1topb/cmd/asn1topb/cmd"

func main() {
	cmd.Execute()
}
