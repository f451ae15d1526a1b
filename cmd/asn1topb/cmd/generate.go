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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	log "github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tomikazi/asn1topb/astmodel"
	"github.com/tomikazi/asn1topb/identgen"
	"github.com/tomikazi/asn1topb/protorender"
	"github.com/tomikazi/asn1topb/translate"
	"github.com/tomikazi/asn1topb/util"
)

func newGenerateCmd() *cobra.Command {
	generate := &cobra.Command{
		Use:   "generate [fixture ...]",
		Short: "Translate one or more resolved ASN.1 module fixtures into Protobuf3",
		RunE:  runGenerate,
	}

	generate.Flags().String("path", "", "Comma separated list of directories to recursively search for module fixtures (*.yaml, *.yml).")
	generate.Flags().String("output_dir", "", "Directory to write generated .proto files to. If unset, output is written to standard output.")
	generate.Flags().Bool("no_indent", false, "Suppress leading indentation on field lines.")
	generate.Flags().Bool("free", false, "Destructively consume each module's IR as it is rendered.")

	return generate
}

func runGenerate(cmd *cobra.Command, args []string) error {
	fixtures, err := collectFixtures(args, viper.GetString("path"))
	if err != nil {
		return err
	}
	if len(fixtures) == 0 {
		log.Exitln("asn1topb: no module fixtures specified; pass files or --path")
	}

	outputDir := viper.GetString("output_dir")
	opts := protorender.Options{
		NoIndent: viper.GetBool("no_indent"),
		Free:     viper.GetBool("free"),
	}

	var errs util.Errors
	for _, fixture := range fixtures {
		if err := generateOne(fixture, outputDir, opts); err != nil {
			log.Errorf("asn1topb: %s: %v", fixture, err)
			errs = util.AppendErr(errs, err)
		}
	}
	if util.HasErrors(errs) {
		return fmt.Errorf("asn1topb: generation completed with errors:\n%s", errs.Error())
	}
	return nil
}

// collectFixtures merges explicit file arguments with every *.yaml/*.yml
// file recursively discovered under the comma-separated directories in
// path, mirroring proto_generator's comma-separated --path handling.
func collectFixtures(args []string, path string) ([]string, error) {
	fixtures := append([]string{}, args...)
	if path == "" {
		return fixtures, nil
	}
	for _, dir := range strings.Split(path, ",") {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		for _, ext := range []string{"yaml", "yml"} {
			pattern := filepath.Join(dir, "**", "*."+ext)
			matches, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid glob under %q: %w", dir, err)
			}
			fixtures = append(fixtures, matches...)
		}
	}
	return fixtures, nil
}

// generateOne translates a single fixture and renders it to outputDir (or
// standard output if outputDir is empty).
func generateOne(fixture, outputDir string, opts protorender.Options) error {
	mod, err := astmodel.LoadModule(fixture)
	if err != nil {
		return fmt.Errorf("loading fixture: %w", err)
	}

	pm, errs := translate.Translate(mod, translate.Options{})
	if util.HasErrors(errs) {
		log.Warningf("asn1topb: %s: translated with errors: %s", fixture, errs.Error())
	}

	if outputDir == "" {
		return protorender.Render(protorender.Stdout(), pm, opts)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	outPath := filepath.Join(outputDir, identgen.LowerSnakeCase(mod.Name)+".proto")
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	return protorender.Render(f, pm, opts)
}
