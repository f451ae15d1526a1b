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

package cmd

import (
	"bytes"
	"fmt"
	"os"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tomikazi/asn1topb/astmodel"
	"github.com/tomikazi/asn1topb/protorender"
	"github.com/tomikazi/asn1topb/translate"
	"github.com/tomikazi/asn1topb/util"
)

// newBufferCmd wires up the in-memory growable-buffer sink mode, as
// opposed to generate's direct-write-to-standard-output/file mode:
// every fixture's rendered output accumulates into a single buffer,
// which is only drained once every fixture has been translated and
// rendered.
func newBufferCmd() *cobra.Command {
	bufferCmd := &cobra.Command{
		Use:   "buffer [fixture ...]",
		Short: "Translate module fixtures into Protobuf3, accumulating output in a single in-memory buffer before draining it",
		RunE:  runBuffer,
	}

	bufferCmd.Flags().String("path", "", "Comma separated list of directories to recursively search for module fixtures (*.yaml, *.yml).")
	bufferCmd.Flags().String("output_file", "", "File to drain the accumulated buffer to. If unset, it is drained to standard output.")
	bufferCmd.Flags().Bool("no_indent", false, "Suppress leading indentation on field lines.")
	bufferCmd.Flags().Bool("free", false, "Destructively consume each module's IR as it is rendered.")

	return bufferCmd
}

func runBuffer(cmd *cobra.Command, args []string) error {
	fixtures, err := collectFixtures(args, viper.GetString("path"))
	if err != nil {
		return err
	}
	if len(fixtures) == 0 {
		log.Exitln("asn1topb: no module fixtures specified; pass files or --path")
	}

	opts := protorender.Options{
		NoIndent: viper.GetBool("no_indent"),
		Free:     viper.GetBool("free"),
	}

	buf := protorender.Buffer()
	var errs util.Errors
	for _, fixture := range fixtures {
		if err := renderIntoBuffer(buf, fixture, opts); err != nil {
			log.Errorf("asn1topb: %s: %v", fixture, err)
			errs = util.AppendErr(errs, err)
		}
	}

	if err := drainBuffer(buf, viper.GetString("output_file")); err != nil {
		return fmt.Errorf("draining buffer: %w", err)
	}
	if util.HasErrors(errs) {
		return fmt.Errorf("asn1topb: generation completed with errors:\n%s", errs.Error())
	}
	return nil
}

// renderIntoBuffer translates fixture and appends its rendered output to
// buf; the caller drains buf only after every fixture has been
// processed.
func renderIntoBuffer(buf *bytes.Buffer, fixture string, opts protorender.Options) error {
	mod, err := astmodel.LoadModule(fixture)
	if err != nil {
		return fmt.Errorf("loading fixture: %w", err)
	}

	pm, errs := translate.Translate(mod, translate.Options{})
	if util.HasErrors(errs) {
		log.Warningf("asn1topb: %s: translated with errors: %s", fixture, errs.Error())
	}

	return protorender.Render(buf, pm, opts)
}

func drainBuffer(buf *bytes.Buffer, outputFile string) error {
	if outputFile == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(outputFile, buf.Bytes(), 0o644)
}
