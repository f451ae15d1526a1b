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

package protorender

import (
	"bytes"
	"io"
	"os"
)

// Stdout returns a sink that writes directly to standard output.
// Callers hold their own io.Writer rather than mutating a process-wide
// selector, so re-entrancy needs no external serialization.
func Stdout() io.Writer {
	return os.Stdout
}

// Buffer returns a growable in-memory sink. The caller drains it with
// Bytes or String once rendering completes.
func Buffer() *bytes.Buffer {
	return &bytes.Buffer{}
}
